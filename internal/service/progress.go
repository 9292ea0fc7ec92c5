package service

import (
	"context"
	"time"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/config"
	"github.com/DanRulev/ordkort.git/internal/models"
	"github.com/DanRulev/ordkort.git/internal/practice"
	"go.uber.org/zap"
)

type ExerciseRI interface {
	IncrementDailyTotal(ctx context.Context, userID int64, day string) error
	DailyTotalsSince(ctx context.Context, userID int64, sinceDay string) ([]models.DailyExerciseTotal, error)
	TotalExercises(ctx context.Context, userID int64) (int, error)
}

type ProgressS struct {
	entries       EntryRI
	exercises     ExerciseRI
	metrics       MetricsI
	defaultWindow int
	maxWindow     int
	now           func() time.Time
	log           *zap.Logger
}

func NewProgressService(entries EntryRI, exercises ExerciseRI, metrics MetricsI, cfg config.ProgressConfig, log *zap.Logger) *ProgressS {
	p := &ProgressS{
		entries:       entries,
		exercises:     exercises,
		metrics:       metrics,
		defaultWindow: cfg.DefaultWindow,
		maxWindow:     cfg.MaxWindow,
		now:           time.Now,
		log:           log,
	}
	if p.maxWindow <= 0 {
		p.maxWindow = practice.MaxWindowDays
	}
	if p.defaultWindow <= 0 {
		p.defaultWindow = practice.DefaultWindowDays
	}
	p.defaultWindow = practice.ClampWindow(p.defaultWindow, p.maxWindow)
	return p
}

// DefaultWindow is the window used when a caller does not ask for one.
func (p *ProgressS) DefaultWindow() int {
	return p.defaultWindow
}

// DailyProgress reports entries added and exercises completed per UTC day
// over the last windowDays days (clamped), plus all-time totals.
func (p *ProgressS) DailyProgress(ctx context.Context, userID int64, windowDays int) (models.DailyProgress, error) {
	window := practice.ClampWindow(windowDays, p.maxWindow)
	now := p.now().UTC()
	start := practice.WindowStart(now, window)

	times, err := p.entries.EntryTimesSince(ctx, userID, start)
	if err != nil {
		p.log.Error("failed to load entry times", zap.Int64("user_id", userID), zap.Error(err))
		return models.DailyProgress{}, apperr.NewPersistence(err)
	}

	totals, err := p.exercises.DailyTotalsSince(ctx, userID, start.Format(time.DateOnly))
	if err != nil {
		p.log.Error("failed to load exercise totals", zap.Int64("user_id", userID), zap.Error(err))
		return models.DailyProgress{}, apperr.NewPersistence(err)
	}

	totalEntries, err := p.entries.CountEntries(ctx, userID)
	if err != nil {
		return models.DailyProgress{}, apperr.NewPersistence(err)
	}

	totalExercises, err := p.exercises.TotalExercises(ctx, userID)
	if err != nil {
		return models.DailyProgress{}, apperr.NewPersistence(err)
	}

	words := practice.AggregateDaily(practice.EventsFromTimes(userID, times), userID, window, now)
	exercises := practice.AggregateDaily(practice.EventsFromTotals(totals), userID, window, now)

	return models.DailyProgress{
		Words:          words.Days,
		Exercises:      exercises.Days,
		TotalEntries:   totalEntries,
		TotalExercises: totalExercises,
		StartDate:      words.Start.Format(time.DateOnly),
		EndDate:        words.End.Format(time.DateOnly),
		WindowDays:     window,
	}, nil
}

// RecordExercise counts one completed exercise for today (UTC).
func (p *ProgressS) RecordExercise(ctx context.Context, userID int64) error {
	day := practice.DayOf(p.now()).Format(time.DateOnly)
	if err := p.exercises.IncrementDailyTotal(ctx, userID, day); err != nil {
		p.log.Error("failed to record exercise", zap.Int64("user_id", userID), zap.Error(err))
		return apperr.NewPersistence(err)
	}
	p.metrics.IncExercises()
	return nil
}
