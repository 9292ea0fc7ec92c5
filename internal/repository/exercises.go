package repository

import (
	"context"
	"fmt"

	"github.com/DanRulev/ordkort.git/internal/models"
)

type ExercisesR struct {
	db QueryI
}

func NewExercisesRepository(db QueryI) *ExercisesR {
	return &ExercisesR{db: db}
}

// IncrementDailyTotal adds one completed exercise to the user's counter for
// day (YYYY-MM-DD), creating the row on first use.
func (x *ExercisesR) IncrementDailyTotal(ctx context.Context, userID int64, day string) error {
	query := x.db.Rebind(`INSERT INTO daily_exercise_totals (user_id, day, count)
		VALUES (?, ?, 1)
		ON CONFLICT (user_id, day)
		DO UPDATE SET count = daily_exercise_totals.count + 1`)
	if _, err := x.db.ExecContext(ctx, query, userID, day); err != nil {
		return fmt.Errorf("increment daily total: %w", err)
	}
	return nil
}

func (x *ExercisesR) DailyTotalsSince(ctx context.Context, userID int64, sinceDay string) ([]models.DailyExerciseTotal, error) {
	query := x.db.Rebind(`SELECT user_id, day, count FROM daily_exercise_totals
		WHERE user_id = ? AND day >= ?
		ORDER BY day`)

	rows := make([]models.DailyExerciseTotal, 0)
	if err := x.db.SelectContext(ctx, &rows, query, userID, sinceDay); err != nil {
		return nil, err
	}
	return rows, nil
}

func (x *ExercisesR) TotalExercises(ctx context.Context, userID int64) (int, error) {
	var total int
	query := x.db.Rebind(`SELECT COALESCE(SUM(count), 0) FROM daily_exercise_totals WHERE user_id = ?`)
	if err := x.db.GetContext(ctx, &total, query, userID); err != nil {
		return 0, err
	}
	return total, nil
}
