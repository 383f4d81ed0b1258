package views

import (
	"sort"

	"reservas-backend/models"
)

// DayGroup is one timeline entry: all reservations sharing a date, ordered
// by time of day.
type DayGroup struct {
	Date  string               `json:"date"`
	Items []models.Reservation `json:"items"`
}

// GroupTimeline groups reservations by date for the agenda view. Groups are
// ordered by ascending date string; within a group entries are ordered by
// ascending time, with "00:00" substituted for a missing time so undated
// entries sort first.
func GroupTimeline(reservations []models.Reservation) []DayGroup {
	grouped := make(map[string][]models.Reservation)
	for _, r := range reservations {
		grouped[r.Date] = append(grouped[r.Date], r)
	}

	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	timeline := make([]DayGroup, 0, len(dates))
	for _, date := range dates {
		items := grouped[date]
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].SortTime() < items[j].SortTime()
		})
		timeline = append(timeline, DayGroup{Date: date, Items: items})
	}
	return timeline
}
