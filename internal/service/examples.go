package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/metrics"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"go.uber.org/zap"
)

const (
	defaultMaxAttempts = 3
	notesWriteAttempts = 3
)

type EntryRI interface {
	CreateEntry(ctx context.Context, entry models.NewEntry) (models.Entry, error)
	Entry(ctx context.Context, userID, entryID int64) (models.Entry, error)
	Entries(ctx context.Context, userID int64, offset, limit int) ([]models.Entry, int, error)
	RandomEntry(ctx context.Context, userID int64) (models.Entry, error)
	DeleteEntry(ctx context.Context, userID, entryID int64) error
	CompareAndSwapNotes(ctx context.Context, userID, entryID int64, old, notes string) (bool, error)
	EntryTimesSince(ctx context.Context, userID int64, since time.Time) ([]time.Time, error)
	CountEntries(ctx context.Context, userID int64) (int, error)
}

type ExampleOptions struct {
	MaxAttempts int
	MaxKeep     int
	DedupMode   practice.DedupMode
}

type ExampleS struct {
	generator   ExampleGeneratorI
	repo        EntryRI
	metrics     MetricsI
	dedup       practice.Deduplicator
	maxAttempts int
	maxKeep     int
	log         *zap.Logger
}

func NewExampleService(generator ExampleGeneratorI, repo EntryRI, metrics MetricsI, opts ExampleOptions, log *zap.Logger) *ExampleS {
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	return &ExampleS{
		generator:   generator,
		repo:        repo,
		metrics:     metrics,
		dedup:       practice.NewDeduplicator(opts.DedupMode),
		maxAttempts: opts.MaxAttempts,
		maxKeep:     opts.MaxKeep,
		log:         log,
	}
}

func (e *ExampleS) Examples(ctx context.Context, userID, entryID int64) ([]models.Example, error) {
	entry, err := e.entry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}
	return e.dedup.Decode(entry.Notes), nil
}

// AddExample generates a new example for the entry and stores it. Without
// Append or Force an already stored example is returned as is.
func (e *ExampleS) AddExample(ctx context.Context, userID, entryID int64, opts models.AddExampleOptions) (models.ExampleResult, error) {
	entry, err := e.entry(ctx, userID, entryID)
	if err != nil {
		return models.ExampleResult{}, err
	}
	if err := requireTranslated(entry); err != nil {
		return models.ExampleResult{}, err
	}

	existing := e.dedup.Decode(entry.Notes)
	if !opts.Force && !opts.Append && len(existing) > 0 {
		return models.ExampleResult{Example: existing[0], Examples: existing}, nil
	}

	example, err := e.GenerateUnique(ctx, entry, e.maxAttempts, false)
	if err != nil {
		return models.ExampleResult{}, apperr.NewCanceled(err)
	}
	if example == nil || example.IsEmpty() {
		return models.ExampleResult{}, apperr.NewGenerationUnavailable("no example available right now")
	}

	maxKeep := opts.MaxKeep
	if maxKeep == 0 {
		maxKeep = e.maxKeep
	}

	examples, err := e.saveExample(ctx, entry, *example, opts.Append, maxKeep)
	if err != nil {
		return models.ExampleResult{}, err
	}

	return models.ExampleResult{Example: *example, Examples: examples}, nil
}

// DeleteExample removes the example at index and returns what is left.
func (e *ExampleS) DeleteExample(ctx context.Context, userID, entryID int64, index int) ([]models.Example, error) {
	entry, err := e.entry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	return e.updateExamples(ctx, entry, func(examples []models.Example) ([]models.Example, error) {
		if index < 0 || index >= len(examples) {
			return nil, apperr.NewNotFound("example")
		}
		left := make([]models.Example, 0, len(examples)-1)
		left = append(left, examples[:index]...)
		return append(left, examples[index+1:]...), nil
	})
}

// GenerateUnique asks the generator for an example that does not repeat the
// entry's stored ones. A duplicate goes on the avoid list for the next
// attempt. Generation errors are logged and count as a spent attempt.
//
// After maxAttempts without a unique result it returns nil when
// requireUnique is set, otherwise the last duplicate candidate (or nil).
// The only error is the context's, checked between attempts.
func (e *ExampleS) GenerateUnique(ctx context.Context, entry models.Entry, maxAttempts int, requireUnique bool) (*models.Example, error) {
	if maxAttempts <= 0 {
		maxAttempts = e.maxAttempts
	}

	existing := e.dedup.Decode(entry.Notes)
	avoid := make([]string, 0, len(existing)+maxAttempts)
	for _, ex := range existing {
		if ex.Danish != "" {
			avoid = append(avoid, ex.Danish)
		}
	}

	var last *models.Example
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		candidate, outcome := e.attempt(ctx, entry, existing, avoid)
		e.metrics.ObserveGeneration(outcome)

		switch outcome {
		case metrics.OutcomeUnique:
			return &candidate, nil
		case metrics.OutcomeDuplicate:
			e.log.Info("generated example repeats a stored one",
				zap.Int64("entry_id", entry.ID), zap.Int("attempt", attempt))
			last = &candidate
			if candidate.Danish != "" {
				avoid = append(avoid, candidate.Danish)
			}
		case metrics.OutcomeEmpty:
			e.log.Warn("empty example generated", zap.Int64("entry_id", entry.ID), zap.Int("attempt", attempt))
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if requireUnique {
		return nil, nil
	}
	return last, nil
}

func (e *ExampleS) attempt(ctx context.Context, entry models.Entry, existing []models.Example, avoid []string) (models.Example, string) {
	candidate, err := e.generator.GenerateExamplePair(ctx, entry.Text, entry.Translation, avoid)
	if err != nil {
		e.log.Error("failed to generate example", zap.Int64("entry_id", entry.ID), zap.Error(err))
		return models.Example{}, metrics.OutcomeFailed
	}

	candidate.Danish = strings.TrimSpace(candidate.Danish)
	candidate.English = strings.TrimSpace(candidate.English)
	switch {
	case candidate.IsEmpty():
		return candidate, metrics.OutcomeEmpty
	case e.dedup.IsDuplicate(existing, candidate):
		return candidate, metrics.OutcomeDuplicate
	default:
		return candidate, metrics.OutcomeUnique
	}
}

func (e *ExampleS) saveExample(ctx context.Context, entry models.Entry, example models.Example, appendMode bool, maxKeep int) ([]models.Example, error) {
	return e.updateExamples(ctx, entry, func(examples []models.Example) ([]models.Example, error) {
		return e.dedup.MergeExample(examples, example, appendMode, maxKeep), nil
	})
}

// updateExamples applies change to the entry's examples and writes them back
// only if the notes were not modified in between. On a conflict the entry
// is re-read and change re-applied to the fresh list.
func (e *ExampleS) updateExamples(ctx context.Context, entry models.Entry, change func([]models.Example) ([]models.Example, error)) ([]models.Example, error) {
	current := entry
	for attempt := 1; attempt <= notesWriteAttempts; attempt++ {
		updated, err := change(e.dedup.Decode(current.Notes))
		if err != nil {
			return nil, err
		}

		swapped, err := e.repo.CompareAndSwapNotes(ctx, current.UserID, current.ID, current.Notes, practice.EncodeExamples(updated))
		if err != nil {
			e.log.Error("failed to store examples", zap.Int64("entry_id", current.ID), zap.Error(err))
			return nil, apperr.NewPersistence(err)
		}
		if swapped {
			return updated, nil
		}

		e.metrics.IncCASConflict()
		e.log.Warn("entry notes changed concurrently", zap.Int64("entry_id", current.ID), zap.Int("attempt", attempt))

		current, err = e.repo.Entry(ctx, current.UserID, current.ID)
		if err != nil {
			return nil, storeErr(err, "entry")
		}
	}

	return nil, apperr.NewPersistence(errors.New("entry notes kept changing concurrently"))
}

func (e *ExampleS) entry(ctx context.Context, userID, entryID int64) (models.Entry, error) {
	entry, err := e.repo.Entry(ctx, userID, entryID)
	if err != nil {
		if !errors.Is(err, apperr.ErrRecordNotFound) {
			e.log.Error("failed to load entry", zap.Int64("user_id", userID), zap.Int64("entry_id", entryID), zap.Error(err))
		}
		return models.Entry{}, storeErr(err, "entry")
	}
	return entry, nil
}

func requireTranslated(entry models.Entry) error {
	if strings.TrimSpace(entry.Text) == "" || strings.TrimSpace(entry.Translation) == "" {
		return apperr.NewValidation("the entry is missing a word or translation")
	}
	return nil
}
