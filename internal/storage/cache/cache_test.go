package cache

import (
	"strings"
	"testing"
	"time"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_Cloze(t *testing.T) {
	t.Parallel()

	c := NewCache(1, time.Minute)
	cloze := models.Cloze{EntryID: 7, Prompt: "Jeg kan _____ hurtigt.", Answer: "løbe", Hint: "I can run fast."}

	_, ok := c.GetCloze(1)
	assert.False(t, ok)

	require.NoError(t, c.SetCloze(1, cloze))
	got, ok := c.GetCloze(1)
	require.True(t, ok)
	assert.Equal(t, cloze, got)

	_, ok = c.GetCloze(2)
	assert.False(t, ok, "state is per user")

	c.DeleteCloze(1)
	_, ok = c.GetCloze(1)
	assert.False(t, ok)
}

func TestCache_Flashcards(t *testing.T) {
	t.Parallel()

	c := NewCache(1, time.Minute)
	cards := models.Flashcards{
		EntryID: 3,
		Prompt:  "løbe",
		Options: []models.FlashcardOption{
			{ID: "a", Label: "run", IsCorrect: true},
			{ID: "b", Label: "sing"},
		},
	}

	require.NoError(t, c.SetFlashcards(5, cards))
	got, ok := c.GetFlashcards(5)
	require.True(t, ok)
	assert.Equal(t, cards, got)

	c.DeleteFlashcards(5)
	_, ok = c.GetFlashcards(5)
	assert.False(t, ok)
}

func TestCache_Entry(t *testing.T) {
	t.Parallel()

	c := NewCache(0, time.Minute)

	require.NoError(t, c.SetEntry(9, 42))
	id, ok := c.GetEntry(9)
	require.True(t, ok)
	assert.EqualValues(t, 42, id)

	c.DeleteEntry(9)
	_, ok = c.GetEntry(9)
	assert.False(t, ok)
}

func TestCache_KindsDoNotCollide(t *testing.T) {
	t.Parallel()

	c := NewCache(1, time.Minute)
	require.NoError(t, c.SetEntry(1, 42))
	require.NoError(t, c.SetCloze(1, models.Cloze{EntryID: 1, Answer: "x"}))

	id, ok := c.GetEntry(1)
	require.True(t, ok)
	assert.EqualValues(t, 42, id)
}

func TestCache_TooLarge(t *testing.T) {
	t.Parallel()

	c := NewCache(0, time.Minute)
	err := c.SetCloze(1, models.Cloze{Prompt: strings.Repeat("x", 4096)})
	require.Error(t, err)
	assert.True(t, IsTooLarge(err))
}
