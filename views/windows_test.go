package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reservas-backend/models"
)

func onDate(date string) models.Reservation {
	return models.Reservation{ID: date, Date: date, Activity: "Surf"}
}

func dates(reservations []models.Reservation) []string {
	out := make([]string, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, r.Date)
	}
	return out
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", s)
	assert.NoError(t, err)
	return parsed
}

func TestFilterToday(t *testing.T) {
	all := []models.Reservation{onDate("2024-03-14"), onDate("2024-03-15"), onDate("2024-03-16")}

	got := FilterByWindow(all, mustDate(t, "2024-03-15"), WindowToday)

	assert.Equal(t, []string{"2024-03-15"}, dates(got))
}

func TestFilterWeekMondayThroughSunday(t *testing.T) {
	all := []models.Reservation{
		onDate("2024-03-10"), // Sunday of the previous week
		onDate("2024-03-11"), // Monday
		onDate("2024-03-17"), // Sunday
		onDate("2024-03-18"), // next Monday
	}

	// Wednesday 2024-03-13 belongs to the week 03-11 .. 03-17.
	got := FilterByWindow(all, mustDate(t, "2024-03-13"), WindowWeek)

	assert.Equal(t, []string{"2024-03-11", "2024-03-17"}, dates(got))
}

func TestFilterWeekSundayIsDaySeven(t *testing.T) {
	all := []models.Reservation{onDate("2024-03-11"), onDate("2024-03-18")}

	// Sunday 2024-03-17 still counts as day 7 of the 03-11 week, so the
	// window must not slide to the following week.
	got := FilterByWindow(all, mustDate(t, "2024-03-17"), WindowWeek)

	assert.Equal(t, []string{"2024-03-11"}, dates(got))
}

func TestFilterMonth(t *testing.T) {
	all := []models.Reservation{
		onDate("2024-02-29"),
		onDate("2024-03-01"),
		onDate("2024-03-31"),
		onDate("2024-04-01"),
	}

	got := FilterByWindow(all, mustDate(t, "2024-03-15"), WindowMonth)

	assert.Equal(t, []string{"2024-03-01", "2024-03-31"}, dates(got))
}

func TestFilterYear(t *testing.T) {
	all := []models.Reservation{
		onDate("2023-12-31"),
		onDate("2024-01-01"),
		onDate("2024-12-31"),
		onDate("2025-01-01"),
	}

	got := FilterByWindow(all, mustDate(t, "2024-06-15"), WindowYear)

	assert.Equal(t, []string{"2024-01-01", "2024-12-31"}, dates(got))
}

func TestFilterExcludesUnparseableDatesExceptAll(t *testing.T) {
	all := []models.Reservation{onDate("garbage"), onDate("2024-03-15")}
	ref := mustDate(t, "2024-03-15")

	for _, w := range []Window{WindowToday, WindowWeek, WindowMonth, WindowYear} {
		got := FilterByWindow(all, ref, w)
		assert.Equal(t, []string{"2024-03-15"}, dates(got), "window %s", w)
	}

	got := FilterByWindow(all, ref, WindowAll)
	assert.Len(t, got, 2)
}

func TestFilterAllDoesNotShareBackingArray(t *testing.T) {
	all := []models.Reservation{onDate("2024-03-15")}
	got := FilterByWindow(all, mustDate(t, "2024-03-15"), WindowAll)

	got[0].Date = "changed"
	assert.Equal(t, "2024-03-15", all[0].Date)
}
