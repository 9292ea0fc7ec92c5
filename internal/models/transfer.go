package models

import "time"

type ExportUser struct {
	ID           int64  `json:"id" db:"id"`
	Username     string `json:"username" db:"username"`
	PasswordHash string `json:"password_hash" db:"password_hash"`
	TelegramID   *int64 `json:"telegram_id,omitempty" db:"telegram_id"`
}

type ExportEntry struct {
	ID              int64     `json:"id" db:"id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	Text            string    `json:"text" db:"text"`
	Translation     string    `json:"translation" db:"translation"`
	Notes           string    `json:"notes" db:"notes"`
	IsExternalInput bool      `json:"is_external_input" db:"is_external_input"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

// Dump is the JSON document produced by export and consumed by import.
// ExerciseLogsDaily and ExerciseLogs are older shapes accepted on import
// only; they are folded into DailyExerciseTotals.
type Dump struct {
	Users               []ExportUser         `json:"users"`
	Entries             []ExportEntry        `json:"entries"`
	DailyExerciseTotals []DailyExerciseTotal `json:"daily_exercise_totals"`

	ExerciseLogsDaily []struct {
		UserID *int64 `json:"user_id"`
		Date   string `json:"date"`
		Count  int    `json:"count"`
	} `json:"exercise_logs_daily,omitempty"`
	ExerciseLogs []struct {
		UserID    *int64 `json:"user_id"`
		CreatedAt string `json:"created_at"`
	} `json:"exercise_logs,omitempty"`
}

type ImportSummary struct {
	Users               int `json:"users"`
	Entries             int `json:"entries"`
	DailyExerciseTotals int `json:"daily_exercise_totals"`
}
