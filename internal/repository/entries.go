package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
)

const entryColumns = `id, user_id, text, COALESCE(translation, '') AS translation,
	COALESCE(notes, '') AS notes, is_external_input, created_at`

type EntriesR struct {
	db QueryI
}

func NewEntriesRepository(db QueryI) *EntriesR {
	return &EntriesR{db: db}
}

func (e *EntriesR) CreateEntry(ctx context.Context, entry models.NewEntry) (models.Entry, error) {
	created := models.Entry{
		UserID:          entry.UserID,
		Text:            entry.Text,
		Translation:     entry.Translation,
		IsExternalInput: entry.IsExternalInput,
		CreatedAt:       time.Now().UTC(),
	}

	query := e.db.Rebind(`INSERT INTO entries (user_id, text, translation, notes, is_external_input, created_at)
		VALUES (?, ?, ?, NULL, ?, ?)
		RETURNING id`)
	err := e.db.GetContext(ctx, &created.ID, query,
		created.UserID, created.Text, created.Translation, created.IsExternalInput, created.CreatedAt)
	if err != nil {
		return models.Entry{}, fmt.Errorf("create entry: %w", err)
	}

	return created, nil
}

// Entry returns the entry only if it belongs to userID.
func (e *EntriesR) Entry(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	query := e.db.Rebind(`SELECT ` + entryColumns + ` FROM entries WHERE id = ? AND user_id = ?`)

	var entry models.Entry
	if err := e.db.GetContext(ctx, &entry, query, entryID, userID); err != nil {
		return models.Entry{}, notFound(err)
	}
	return entry, nil
}

// Entries returns a page of the user's entries, newest first, with the total
// count. limit <= 0 returns everything from offset on.
func (e *EntriesR) Entries(ctx context.Context, userID int64, offset, limit int) ([]models.Entry, int, error) {
	var total int
	err := e.db.GetContext(ctx, &total, e.db.Rebind(`SELECT COUNT(*) FROM entries WHERE user_id = ?`), userID)
	if err != nil {
		return nil, 0, err
	}

	if total == 0 {
		return []models.Entry{}, 0, nil
	}

	query := `SELECT ` + entryColumns + ` FROM entries WHERE user_id = ? ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		query += ` LIMIT ? OFFSET ?`
		args = append(args, limit, offset)
	}

	entries := make([]models.Entry, 0, total)
	if err := e.db.SelectContext(ctx, &entries, e.db.Rebind(query), args...); err != nil {
		return nil, 0, err
	}
	if limit <= 0 && offset > 0 {
		if offset >= len(entries) {
			return []models.Entry{}, total, nil
		}
		entries = entries[offset:]
	}

	return entries, total, nil
}

// RandomEntry picks one of the user's entries that has a translation.
func (e *EntriesR) RandomEntry(ctx context.Context, userID int64) (models.Entry, error) {
	query := e.db.Rebind(`SELECT ` + entryColumns + ` FROM entries
		WHERE user_id = ? AND COALESCE(translation, '') <> ''
		ORDER BY RANDOM()
		LIMIT 1`)

	var entry models.Entry
	if err := e.db.GetContext(ctx, &entry, query, userID); err != nil {
		return models.Entry{}, notFound(err)
	}
	return entry, nil
}

func (e *EntriesR) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	res, err := e.db.ExecContext(ctx, e.db.Rebind(`DELETE FROM entries WHERE id = ? AND user_id = ?`), entryID, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.ErrRecordNotFound
	}
	return nil
}

// CompareAndSwapNotes stores notes only if the current value still equals
// old (NULL compares as ""). It reports whether the row was updated.
func (e *EntriesR) CompareAndSwapNotes(ctx context.Context, userID, entryID int64, old, notes string) (bool, error) {
	query := e.db.Rebind(`UPDATE entries SET notes = ?
		WHERE id = ? AND user_id = ? AND COALESCE(notes, '') = ?`)
	res, err := e.db.ExecContext(ctx, query, notes, entryID, userID, old)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// EntryTimesSince returns creation times of the user's entries created at or
// after since.
func (e *EntriesR) EntryTimesSince(ctx context.Context, userID int64, since time.Time) ([]time.Time, error) {
	query := e.db.Rebind(`SELECT created_at FROM entries WHERE user_id = ? AND created_at >= ? ORDER BY created_at`)

	times := make([]time.Time, 0)
	if err := e.db.SelectContext(ctx, &times, query, userID, since.UTC()); err != nil {
		return nil, err
	}
	return times, nil
}

func (e *EntriesR) CountEntries(ctx context.Context, userID int64) (int, error) {
	var total int
	err := e.db.GetContext(ctx, &total, e.db.Rebind(`SELECT COUNT(*) FROM entries WHERE user_id = ?`), userID)
	if err != nil {
		return 0, err
	}
	return total, nil
}
