package cache

import (
	"errors"
	"strconv"
	"time"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/coocood/freecache"
	"github.com/goccy/go-json"
)

const minSizeBytes = 512 * 1024

const (
	kindCloze      = "cloze"
	kindFlashcards = "flashcards"
	kindEntry      = "entry"
)

// Cache keeps per-user practice state (the exercise awaiting an answer, the
// entry last shown) for a limited time.
type Cache struct {
	store *freecache.Cache
	ttl   int
}

func NewCache(sizeMB int, ttl time.Duration) *Cache {
	size := sizeMB * 1024 * 1024
	if size < minSizeBytes {
		size = minSizeBytes
	}
	return &Cache{
		store: freecache.NewCache(size),
		ttl:   int(ttl / time.Second),
	}
}

func key(kind string, userID int64) []byte {
	return []byte(kind + ":" + strconv.FormatInt(userID, 10))
}

func (c *Cache) set(kind string, userID int64, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.store.Set(key(kind, userID), b, c.ttl)
}

func (c *Cache) get(kind string, userID int64, dst any) bool {
	b, err := c.store.Get(key(kind, userID))
	if err != nil {
		return false
	}
	return json.Unmarshal(b, dst) == nil
}

func (c *Cache) del(kind string, userID int64) {
	c.store.Del(key(kind, userID))
}

func (c *Cache) SetCloze(userID int64, cloze models.Cloze) error {
	return c.set(kindCloze, userID, cloze)
}

func (c *Cache) GetCloze(userID int64) (models.Cloze, bool) {
	var cloze models.Cloze
	ok := c.get(kindCloze, userID, &cloze)
	return cloze, ok
}

func (c *Cache) DeleteCloze(userID int64) {
	c.del(kindCloze, userID)
}

func (c *Cache) SetFlashcards(userID int64, cards models.Flashcards) error {
	return c.set(kindFlashcards, userID, cards)
}

func (c *Cache) GetFlashcards(userID int64) (models.Flashcards, bool) {
	var cards models.Flashcards
	ok := c.get(kindFlashcards, userID, &cards)
	return cards, ok
}

func (c *Cache) DeleteFlashcards(userID int64) {
	c.del(kindFlashcards, userID)
}

// SetEntry remembers the entry the user looked at last, so follow-up actions
// such as "more examples" know what to act on.
func (c *Cache) SetEntry(userID, entryID int64) error {
	return c.set(kindEntry, userID, entryID)
}

func (c *Cache) GetEntry(userID int64) (int64, bool) {
	var entryID int64
	ok := c.get(kindEntry, userID, &entryID)
	return entryID, ok && entryID > 0
}

func (c *Cache) DeleteEntry(userID int64) {
	c.del(kindEntry, userID)
}

// IsTooLarge reports whether err means the value exceeds the per-entry limit
// of the configured cache size.
func IsTooLarge(err error) bool {
	return errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey)
}
