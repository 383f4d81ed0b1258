// utils/dates.go
package utils

import "time"

// DateLayout is the calendar-date format used across the system.
const DateLayout = "2006-01-02"

// TimeLayout is the 24h time-of-day format used across the system.
const TimeLayout = "15:04"

func BeginningOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the Monday of t's week. Sunday counts as day 7 of
// the current week, not day 1 of the next.
func StartOfWeek(t time.Time) time.Time {
	day := int(t.Weekday())
	if day == 0 {
		day = 7
	}
	return BeginningOfDay(t).AddDate(0, 0, -(day - 1))
}

// DaysInMonth returns the number of calendar days in the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekdayIndex returns the Monday-first, 0-indexed weekday of day 1
// of the given month (Monday = 0 ... Sunday = 6).
func FirstWeekdayIndex(year int, month time.Month) int {
	day := int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
	if day == 0 {
		return 6
	}
	return day - 1
}
