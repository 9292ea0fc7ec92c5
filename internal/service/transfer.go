package service

import (
	"context"
	"sort"
	"strings"

	"github.com/DanRulev/ordkort.git/internal/apperr"
	"github.com/DanRulev/ordkort.git/internal/models"
	"go.uber.org/zap"
)

type TransferRI interface {
	ExportAll(ctx context.Context) (models.Dump, error)
	ReplaceAll(ctx context.Context, dump models.Dump) error
}

type TransferS struct {
	repo TransferRI
	log  *zap.Logger
}

func NewTransferService(repo TransferRI, log *zap.Logger) *TransferS {
	return &TransferS{repo: repo, log: log}
}

func (t *TransferS) Export(ctx context.Context) (models.Dump, error) {
	dump, err := t.repo.ExportAll(ctx)
	if err != nil {
		return models.Dump{}, apperr.NewPersistence(err)
	}
	t.log.Info("exported data",
		zap.Int("users", len(dump.Users)),
		zap.Int("entries", len(dump.Entries)),
		zap.Int("daily_exercise_totals", len(dump.DailyExerciseTotals)),
	)
	return dump, nil
}

// Import replaces all stored data with dump.
func (t *TransferS) Import(ctx context.Context, dump models.Dump) (models.ImportSummary, error) {
	dump.DailyExerciseTotals = FoldLegacyTotals(dump)
	dump.ExerciseLogsDaily = nil
	dump.ExerciseLogs = nil

	if err := t.repo.ReplaceAll(ctx, dump); err != nil {
		t.log.Error("import failed", zap.Error(err))
		return models.ImportSummary{}, apperr.NewPersistence(err)
	}

	summary := models.ImportSummary{
		Users:               len(dump.Users),
		Entries:             len(dump.Entries),
		DailyExerciseTotals: len(dump.DailyExerciseTotals),
	}
	t.log.Info("imported data",
		zap.Int("users", summary.Users),
		zap.Int("entries", summary.Entries),
		zap.Int("daily_exercise_totals", summary.DailyExerciseTotals),
	)
	return summary, nil
}

// FoldLegacyTotals returns the dump's daily totals. Older exports without
// them carry either per-day rows (exercise_logs_daily) or one row per
// exercise (exercise_logs), which are converted.
func FoldLegacyTotals(dump models.Dump) []models.DailyExerciseTotal {
	if len(dump.DailyExerciseTotals) > 0 {
		return dump.DailyExerciseTotals
	}

	totals := make([]models.DailyExerciseTotal, 0)

	if len(dump.ExerciseLogsDaily) > 0 {
		for _, row := range dump.ExerciseLogsDaily {
			day := strings.TrimSpace(row.Date)
			if row.UserID == nil || day == "" {
				continue
			}
			totals = append(totals, models.DailyExerciseTotal{UserID: *row.UserID, Day: day, Count: row.Count})
		}
		return totals
	}

	type key struct {
		userID int64
		day    string
	}
	counts := make(map[key]int)
	for _, log := range dump.ExerciseLogs {
		if log.UserID == nil || len(log.CreatedAt) < len("2006-01-02") {
			continue
		}
		counts[key{userID: *log.UserID, day: log.CreatedAt[:10]}]++
	}
	for k, n := range counts {
		totals = append(totals, models.DailyExerciseTotal{UserID: k.userID, Day: k.day, Count: n})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].UserID != totals[j].UserID {
			return totals[i].UserID < totals[j].UserID
		}
		return totals[i].Day < totals[j].Day
	})
	return totals
}
