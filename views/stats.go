package views

import "reservas-backend/models"

// Summary holds the operational counters shown above the dashboard.
type Summary struct {
	Total            int `json:"total"`
	UniqueActivities int `json:"uniqueActivities"`
	ActiveGuides     int `json:"activeGuides"`
}

// Summarize counts the windowed subset: total reservations, distinct
// activities, and distinct assigned guides. The unassigned sentinel and
// empty responsible values do not count as guides.
func Summarize(reservations []models.Reservation) Summary {
	activities := make(map[string]struct{})
	guides := make(map[string]struct{})
	for _, r := range reservations {
		activities[r.Activity] = struct{}{}
		if r.Responsible != "" && r.Responsible != models.ResponsibleUnassigned {
			guides[r.Responsible] = struct{}{}
		}
	}
	return Summary{
		Total:            len(reservations),
		UniqueActivities: len(activities),
		ActiveGuides:     len(guides),
	}
}
