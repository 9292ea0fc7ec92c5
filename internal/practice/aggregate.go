package practice

import (
	"time"

	"github.com/DanRulev/ordkort.git/internal/models"
)

const (
	DefaultWindowDays = 7
	MaxWindowDays     = 90
)

// ClampWindow bounds a requested window to [1, maxDays].
func ClampWindow(days, maxDays int) int {
	if maxDays <= 0 || maxDays > MaxWindowDays {
		maxDays = MaxWindowDays
	}
	if days < 1 {
		return 1
	}
	if days > maxDays {
		return maxDays
	}
	return days
}

// DayOf truncates t to its UTC calendar day.
func DayOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WindowStart is the first day of a window of windowDays ending on now's day.
func WindowStart(now time.Time, windowDays int) time.Time {
	return DayOf(now).AddDate(0, 0, -(ClampWindow(windowDays, MaxWindowDays) - 1))
}

// AggregateDaily sums the events of userID per UTC day and returns exactly
// windowDays entries ending today, oldest first, with zeroes for empty days.
func AggregateDaily(events []models.ActivityEvent, userID int64, windowDays int, now time.Time) models.DailySeries {
	windowDays = ClampWindow(windowDays, MaxWindowDays)
	today := DayOf(now)
	start := today.AddDate(0, 0, -(windowDays - 1))

	sums := make(map[string]int, windowDays)
	for _, ev := range events {
		if ev.UserID != userID {
			continue
		}
		day := DayOf(ev.Day)
		if day.Before(start) || day.After(today) {
			continue
		}
		sums[day.Format(time.DateOnly)] += ev.Count
	}

	days := make([]models.DailyCount, 0, windowDays)
	for d := start; !d.After(today); d = d.AddDate(0, 0, 1) {
		key := d.Format(time.DateOnly)
		days = append(days, models.DailyCount{Date: key, Count: sums[key]})
	}

	return models.DailySeries{Days: days, Start: start, End: today}
}

// EventsFromTimes turns creation timestamps into one-count events.
func EventsFromTimes(userID int64, times []time.Time) []models.ActivityEvent {
	events := make([]models.ActivityEvent, 0, len(times))
	for _, t := range times {
		if t.IsZero() {
			continue
		}
		events = append(events, models.ActivityEvent{UserID: userID, Day: t, Count: 1})
	}
	return events
}

// EventsFromTotals turns stored per-day counters into events. Rows with an
// unparsable day are skipped.
func EventsFromTotals(rows []models.DailyExerciseTotal) []models.ActivityEvent {
	events := make([]models.ActivityEvent, 0, len(rows))
	for _, row := range rows {
		day, err := time.Parse(time.DateOnly, row.Day)
		if err != nil {
			continue
		}
		events = append(events, models.ActivityEvent{UserID: row.UserID, Day: day, Count: row.Count})
	}
	return events
}
