package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reservas-backend/models"
)

func TestBuildMonthGrid(t *testing.T) {
	reservations := []models.Reservation{
		{ID: "b", Date: "2024-03-15", Time: "10:00"},
		{ID: "a", Date: "2024-03-15", Time: "08:00"},
		{ID: "c", Date: "2024-03-01", Time: "09:00"},
	}

	grid := BuildMonthGrid(reservations, 2024, time.March)

	// March 2024 starts on a Friday: four leading blanks, then 31 days.
	require.Len(t, grid.Cells, 4+31)
	for i := 0; i < 4; i++ {
		assert.Zero(t, grid.Cells[i].Day)
		assert.Empty(t, grid.Cells[i].Reservations)
	}
	assert.Equal(t, 1, grid.Cells[4].Day)
	assert.Equal(t, 31, grid.Cells[len(grid.Cells)-1].Day)

	day15 := grid.Cells[4+14]
	require.Equal(t, 15, day15.Day)
	require.Len(t, day15.Reservations, 2)
	assert.Equal(t, "a", day15.Reservations[0].ID, "cells sort by ascending time")
	assert.Equal(t, "b", day15.Reservations[1].ID)
}

func TestBuildYearOverviewDominance(t *testing.T) {
	reservations := []models.Reservation{
		// Paid outranks booked on the same day.
		{Date: "2024-03-04", Status: models.StatusReservado},
		{Date: "2024-03-04", Status: models.StatusPagado},
		// Booked outranks plain activity.
		{Date: "2024-03-05", Status: models.StatusConsulta},
		{Date: "2024-03-05", Status: models.StatusReservado},
		// Consulta alone is just activity.
		{Date: "2024-03-06", Status: models.StatusConsulta},
		// Cerrado counts as paid.
		{Date: "2024-03-07", Status: models.StatusCerrado},
	}

	months := BuildYearOverview(reservations, 2024)
	require.Len(t, months, 12)

	march := months[2]
	require.Equal(t, 3, march.Month)

	byDay := make(map[int]YearDay)
	for _, d := range march.Days {
		if d.Day != 0 {
			byDay[d.Day] = d
		}
	}

	assert.Equal(t, DayPaid, byDay[4].Class)
	assert.Equal(t, 2, byDay[4].Count)
	assert.Equal(t, DayBooked, byDay[5].Class)
	assert.Equal(t, DayActivity, byDay[6].Class)
	assert.Equal(t, DayPaid, byDay[7].Class)
	assert.Equal(t, DayEmpty, byDay[8].Class)
}

func TestBuildYearOverviewLeapFebruary(t *testing.T) {
	months := BuildYearOverview(nil, 2024)

	february := months[1]
	days := 0
	for _, d := range february.Days {
		if d.Day != 0 {
			days++
		}
	}
	assert.Equal(t, 29, days)
}
