package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"reservas-backend/models"
	"reservas-backend/store"
	"reservas-backend/utils"
	"reservas-backend/views"
)

// DashboardController serves the derived views of the dashboard
type DashboardController struct {
	Store *store.Store
}

// windowedSubset resolves the ?window= and ?date= query parameters and
// filters the current reservations accordingly. It writes the error
// response itself and reports false when the parameters are invalid.
func windowedSubset(c *gin.Context, s *store.Store, fallback views.Window) ([]models.Reservation, bool) {
	window := views.Window(c.DefaultQuery("window", string(fallback)))
	if !views.ValidWindow(window) {
		utils.RespondWithError(c, http.StatusBadRequest, "unknown window selector")
		return nil, false
	}
	ref := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.Parse(utils.DateLayout, d)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "date must be a valid YYYY-MM-DD date")
			return nil, false
		}
		ref = parsed
	}
	return views.FilterByWindow(s.Reservations(), ref, window), true
}

// GetOverview returns the summary counters and the grouped timeline for
// the requested window (the week around today by default).
func (dc *DashboardController) GetOverview(c *gin.Context) {
	filtered, ok := windowedSubset(c, dc.Store, views.WindowWeek)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":  views.Summarize(filtered),
		"timeline": views.GroupTimeline(filtered),
	})
}

// GetMonthGrid returns the calendar grid of one month
func (dc *DashboardController) GetMonthGrid(c *gin.Context) {
	now := time.Now()
	year, ok := intQuery(c, "year", now.Year())
	if !ok {
		return
	}
	month, ok := intQuery(c, "month", int(now.Month()))
	if !ok {
		return
	}
	if month < 1 || month > 12 {
		utils.RespondWithError(c, http.StatusBadRequest, "month must be between 1 and 12")
		return
	}
	grid := views.BuildMonthGrid(dc.Store.Reservations(), year, time.Month(month))
	c.JSON(http.StatusOK, grid)
}

// GetYearOverview returns the twelve-month panorama of one year
func (dc *DashboardController) GetYearOverview(c *gin.Context) {
	year, ok := intQuery(c, "year", time.Now().Year())
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"year":   year,
		"months": views.BuildYearOverview(dc.Store.Reservations(), year),
	})
}

func intQuery(c *gin.Context, name string, fallback int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return n, true
}
