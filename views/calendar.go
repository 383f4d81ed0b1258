package views

import (
	"fmt"
	"sort"
	"time"

	"reservas-backend/models"
	"reservas-backend/utils"
)

// DayCell is one cell of the month grid. Leading cells before day 1 have
// Day == 0 and no reservations.
type DayCell struct {
	Day          int                  `json:"day"`
	Reservations []models.Reservation `json:"reservations"`
}

// MonthGrid holds the calendar cells for one month, Monday-first.
type MonthGrid struct {
	Year  int       `json:"year"`
	Month int       `json:"month"` // 1-12
	Cells []DayCell `json:"cells"`
}

// DayClass is the highlight class of a day in the year overview.
type DayClass string

const (
	DayEmpty    DayClass = "empty"
	DayActivity DayClass = "has-activity"
	DayBooked   DayClass = "booked"
	DayPaid     DayClass = "paid"
)

// YearDay is one day of a year-overview month: its class plus the number
// of reservations that day.
type YearDay struct {
	Day   int      `json:"day"`
	Class DayClass `json:"class"`
	Count int      `json:"count"`
}

// YearMonth is one month of the year overview, with the same leading-blank
// convention as MonthGrid (Day == 0).
type YearMonth struct {
	Month int       `json:"month"` // 1-12
	Days  []YearDay `json:"days"`
}

func dateKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// BuildMonthGrid produces the month calendar: leading blank cells equal to
// the Monday-first weekday index of day 1, then one cell per day holding
// that day's reservations sorted by ascending time.
func BuildMonthGrid(reservations []models.Reservation, year int, month time.Month) MonthGrid {
	byDate := make(map[string][]models.Reservation)
	for _, r := range reservations {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	leading := utils.FirstWeekdayIndex(year, month)
	days := utils.DaysInMonth(year, month)
	cells := make([]DayCell, 0, leading+days)
	for i := 0; i < leading; i++ {
		cells = append(cells, DayCell{})
	}
	for day := 1; day <= days; day++ {
		items := byDate[dateKey(year, month, day)]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SortTime() < items[j].SortTime()
		})
		cells = append(cells, DayCell{Day: day, Reservations: items})
	}
	return MonthGrid{Year: year, Month: int(month), Cells: cells}
}

// classify applies the dominance rule for year-view highlighting:
// paid outranks booked outranks has-activity.
func classify(items []models.Reservation) DayClass {
	if len(items) == 0 {
		return DayEmpty
	}
	class := DayActivity
	for _, r := range items {
		switch r.Status {
		case models.StatusPagado, models.StatusCerrado:
			return DayPaid
		case models.StatusReservado:
			class = DayBooked
		}
	}
	return class
}

// BuildYearOverview produces the twelve-month panorama. Each month uses the
// month-grid day layout collapsed to a per-day class and count.
func BuildYearOverview(reservations []models.Reservation, year int) []YearMonth {
	byDate := make(map[string][]models.Reservation)
	for _, r := range reservations {
		byDate[r.Date] = append(byDate[r.Date], r)
	}

	months := make([]YearMonth, 0, 12)
	for month := time.January; month <= time.December; month++ {
		leading := utils.FirstWeekdayIndex(year, month)
		days := utils.DaysInMonth(year, month)
		cells := make([]YearDay, 0, leading+days)
		for i := 0; i < leading; i++ {
			cells = append(cells, YearDay{Class: DayEmpty})
		}
		for day := 1; day <= days; day++ {
			items := byDate[dateKey(year, month, day)]
			cells = append(cells, YearDay{
				Day:   day,
				Class: classify(items),
				Count: len(items),
			})
		}
		months = append(months, YearMonth{Month: int(month), Days: cells})
	}
	return months
}
