package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/jmoiron/sqlx"
)

type TransferR struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferR {
	return &TransferR{db: db}
}

func (t *TransferR) ExportAll(ctx context.Context) (models.Dump, error) {
	dump := models.Dump{
		Users:               []models.ExportUser{},
		Entries:             []models.ExportEntry{},
		DailyExerciseTotals: []models.DailyExerciseTotal{},
	}

	if err := t.db.SelectContext(ctx, &dump.Users,
		`SELECT id, username, password_hash, telegram_id FROM users ORDER BY id`); err != nil {
		return models.Dump{}, fmt.Errorf("export users: %w", err)
	}
	if err := t.db.SelectContext(ctx, &dump.Entries,
		`SELECT `+entryColumns+` FROM entries ORDER BY id`); err != nil {
		return models.Dump{}, fmt.Errorf("export entries: %w", err)
	}
	if err := t.db.SelectContext(ctx, &dump.DailyExerciseTotals,
		`SELECT user_id, day, count FROM daily_exercise_totals ORDER BY user_id, day`); err != nil {
		return models.Dump{}, fmt.Errorf("export daily totals: %w", err)
	}

	return dump, nil
}

// ReplaceAll deletes every user, entry and counter and inserts the dump's
// rows with their original ids, all in one transaction.
func (t *TransferR) ReplaceAll(ctx context.Context, dump models.Dump) (err error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{"daily_exercise_totals", "entries", "users"} {
		if _, err = tx.ExecContext(ctx, `DELETE FROM `+table); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	insertUser := tx.Rebind(`INSERT INTO users (id, username, password_hash, telegram_id) VALUES (?, ?, ?, ?)`)
	for _, u := range dump.Users {
		if _, err = tx.ExecContext(ctx, insertUser, u.ID, u.Username, u.PasswordHash, u.TelegramID); err != nil {
			return fmt.Errorf("import user %d: %w", u.ID, err)
		}
	}

	insertEntry := tx.Rebind(`INSERT INTO entries (id, user_id, text, translation, notes, is_external_input, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	for _, e := range dump.Entries {
		_, err = tx.ExecContext(ctx, insertEntry,
			e.ID, e.UserID, e.Text, e.Translation, e.Notes, e.IsExternalInput, e.CreatedAt.UTC())
		if err != nil {
			return fmt.Errorf("import entry %d: %w", e.ID, err)
		}
	}

	insertTotal := tx.Rebind(`INSERT INTO daily_exercise_totals (user_id, day, count) VALUES (?, ?, ?)`)
	for _, d := range dump.DailyExerciseTotals {
		if _, err = tx.ExecContext(ctx, insertTotal, d.UserID, d.Day, d.Count); err != nil {
			return fmt.Errorf("import daily total %d/%s: %w", d.UserID, d.Day, err)
		}
	}

	if tx.DriverName() == "postgres" {
		for _, table := range []string{"users", "entries", "daily_exercise_totals"} {
			_, err = tx.ExecContext(ctx, fmt.Sprintf(
				`SELECT setval(pg_get_serial_sequence('%[1]s', 'id'), COALESCE((SELECT MAX(id) FROM %[1]s), 0) + 1, false)`,
				table))
			if err != nil {
				return fmt.Errorf("reset %s sequence: %w", table, err)
			}
		}
	}

	return tx.Commit()
}
