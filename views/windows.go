// Package views computes the derived read models of the dashboard: time
// windows, timelines, calendar grids and summary counters. Every function
// is pure - it works on a snapshot of the collections and never mutates
// its inputs or keeps state between calls.
package views

import (
	"time"

	"reservas-backend/models"
	"reservas-backend/utils"
)

// Window selects a date range relative to a reference instant.
type Window string

const (
	WindowToday Window = "today"
	WindowWeek  Window = "week"
	WindowMonth Window = "month"
	WindowYear  Window = "year"
	WindowAll   Window = "all"
)

// ValidWindow reports whether w is a known window selector.
func ValidWindow(w Window) bool {
	switch w {
	case WindowToday, WindowWeek, WindowMonth, WindowYear, WindowAll:
		return true
	}
	return false
}

// FilterByWindow returns the subset of reservations whose date falls inside
// the window around ref. Reservations with an unparseable date are excluded
// from every window except WindowAll.
func FilterByWindow(reservations []models.Reservation, ref time.Time, window Window) []models.Reservation {
	if window == WindowAll {
		return append([]models.Reservation(nil), reservations...)
	}

	var from, to time.Time
	switch window {
	case WindowToday:
		from = utils.BeginningOfDay(ref)
		to = from
	case WindowWeek:
		from = utils.StartOfWeek(ref)
		to = from.AddDate(0, 0, 6)
	case WindowMonth:
		from = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		to = from.AddDate(0, 1, -1)
	case WindowYear:
		from = time.Date(ref.Year(), 1, 1, 0, 0, 0, 0, ref.Location())
		to = time.Date(ref.Year(), 12, 31, 0, 0, 0, 0, ref.Location())
	default:
		return nil
	}

	// Dates are ISO strings, so the range check can stay in string space
	// once the value is known to parse.
	low, high := from.Format(utils.DateLayout), to.Format(utils.DateLayout)
	filtered := make([]models.Reservation, 0, len(reservations))
	for _, r := range reservations {
		if _, err := time.Parse(utils.DateLayout, r.Date); err != nil {
			continue
		}
		if r.Date >= low && r.Date <= high {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
