package service

import (
	"context"
	"errors"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"github.com/DanRulev/ordkort.git/pkg/validator"
	"go.uber.org/zap"
)

type EntryS struct {
	repo  EntryRI
	dedup practice.Deduplicator
	log   *zap.Logger
}

func NewEntryService(repo EntryRI, dedup practice.Deduplicator, log *zap.Logger) *EntryS {
	return &EntryS{repo: repo, dedup: dedup, log: log}
}

func (e *EntryS) SaveEntry(ctx context.Context, entry models.NewEntry) (models.Entry, error) {
	entry.Text = strings.TrimSpace(entry.Text)
	entry.Translation = strings.TrimSpace(entry.Translation)

	if err := validator.ValidateStruct(entry); err != nil {
		e.log.Debug("invalid entry", zap.Strings("fields", validator.FieldErrors(err)))
		return models.Entry{}, apperr.NewValidation("English and Danish texts are required")
	}

	created, err := e.repo.CreateEntry(ctx, entry)
	if err != nil {
		e.log.Error("failed to save entry", zap.Int64("user_id", entry.UserID), zap.Error(err))
		return models.Entry{}, apperr.NewPersistence(err)
	}
	return created, nil
}

// Entries returns a page of the user's entries, newest first, with their
// decoded examples. limit <= 0 returns all of them.
func (e *EntryS) Entries(ctx context.Context, userID int64, offset, limit int) ([]models.EntryView, int, error) {
	entries, total, err := e.repo.Entries(ctx, userID, offset, limit)
	if err != nil {
		e.log.Error("failed to list entries", zap.Int64("user_id", userID), zap.Error(err))
		return nil, 0, apperr.NewPersistence(err)
	}

	views := make([]models.EntryView, 0, len(entries))
	for _, entry := range entries {
		views = append(views, e.view(entry))
	}
	return views, total, nil
}

func (e *EntryS) Entry(ctx context.Context, userID, entryID int64) (models.EntryView, error) {
	entry, err := e.repo.Entry(ctx, userID, entryID)
	if err != nil {
		return models.EntryView{}, storeErr(err, "entry")
	}
	return e.view(entry), nil
}

// RandomEntry picks one of the user's translated entries for practice.
func (e *EntryS) RandomEntry(ctx context.Context, userID int64) (models.Entry, error) {
	entry, err := e.repo.RandomEntry(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperr.ErrRecordNotFound) {
			e.log.Error("failed to pick entry", zap.Int64("user_id", userID), zap.Error(err))
		}
		return models.Entry{}, storeErr(err, "entry")
	}
	return entry, nil
}

func (e *EntryS) DeleteEntry(ctx context.Context, userID, entryID int64) error {
	if err := e.repo.DeleteEntry(ctx, userID, entryID); err != nil {
		return storeErr(err, "entry")
	}
	return nil
}

func (e *EntryS) view(entry models.Entry) models.EntryView {
	examples := e.dedup.Decode(entry.Notes)
	view := models.EntryView{Entry: entry, Examples: examples}
	if len(examples) > 0 {
		first := examples[0]
		view.Example = &first
	}
	return view
}
