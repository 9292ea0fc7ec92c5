package models

import "time"

// ActivityEvent is one countable occurrence on a calendar day. Raw events
// carry Count 1, pre-aggregated counter rows carry their stored count.
type ActivityEvent struct {
	UserID int64
	Day    time.Time
	Count  int
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type DailySeries struct {
	Days  []DailyCount
	Start time.Time
	End   time.Time
}

type DailyExerciseTotal struct {
	UserID int64  `db:"user_id" json:"user_id"`
	Day    string `db:"day" json:"day"`
	Count  int    `db:"count" json:"count"`
}

type DailyProgress struct {
	Words          []DailyCount `json:"words"`
	Exercises      []DailyCount `json:"exercises"`
	TotalEntries   int          `json:"total_entries"`
	TotalExercises int          `json:"total_exercises"`
	StartDate      string       `json:"start_date"`
	EndDate        string       `json:"end_date"`
	WindowDays     int          `json:"window_days"`
}
