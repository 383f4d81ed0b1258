package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"reservas-backend/models"
	"reservas-backend/store"
	"reservas-backend/utils"
	"reservas-backend/views"
)

// ReservationController handles the reservation CRUD endpoints
type ReservationController struct {
	Store *store.Store
}

// ReservationInput defines the expected JSON structure for creating or
// updating a reservation. It is the untrusted form boundary: toDraft turns
// it into a typed draft or rejects it, so the store never sees a raw value.
type ReservationInput struct {
	ClientName  string  `json:"clientName" binding:"required"`
	Date        string  `json:"date" binding:"required"`
	Time        string  `json:"time"`
	Activity    string  `json:"activity" binding:"required"`
	Responsible string  `json:"responsible"`
	Seller      string  `json:"seller"`
	Price       float64 `json:"price"`
	Cost        float64 `json:"cost"`
	Commission  float64 `json:"commission"`
	Status      string  `json:"status"`
	Notes       string  `json:"notes"`
	ManagedBy   string  `json:"managedBy"`
}

// StatusInput defines the JSON body of a status-only change
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (in ReservationInput) toDraft() (models.ReservationDraft, error) {
	if !utils.ValidateDate(in.Date) {
		return models.ReservationDraft{}, errors.New("date must be a valid YYYY-MM-DD date")
	}
	if in.Time != "" && !utils.ValidateTime(in.Time) {
		return models.ReservationDraft{}, errors.New("time must be a valid HH:MM time")
	}
	if in.Price < 0 || in.Cost < 0 {
		return models.ReservationDraft{}, errors.New("price and cost must not be negative")
	}
	if in.Commission < 0 || in.Commission > 100 {
		return models.ReservationDraft{}, errors.New("commission must be between 0 and 100")
	}

	status := models.ReservationStatus(in.Status)
	if in.Status == "" {
		status = models.StatusConsulta
	} else if !models.ValidStatus(status) {
		return models.ReservationDraft{}, errors.New("unknown reservation status")
	}

	responsible := in.Responsible
	if responsible == "" {
		responsible = models.ResponsibleUnassigned
	}
	seller := in.Seller
	if seller == "" {
		seller = models.DefaultSeller
	}

	return models.ReservationDraft{
		ClientName:  in.ClientName,
		Date:        in.Date,
		Time:        in.Time,
		Activity:    in.Activity,
		Responsible: responsible,
		Seller:      seller,
		Price:       in.Price,
		Cost:        in.Cost,
		Commission:  in.Commission,
		Status:      status,
		Notes:       in.Notes,
		ManagedBy:   in.ManagedBy,
	}, nil
}

// ListReservations returns the reservations of the requested time window
// (all of them by default).
func (rc *ReservationController) ListReservations(c *gin.Context) {
	filtered, ok := windowedSubset(c, rc.Store, views.WindowAll)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, filtered)
}

// CreateReservation validates the submitted form and appends a new
// reservation. The store assigns the ID and creation timestamp.
func (rc *ReservationController) CreateReservation(c *gin.Context) {
	var input ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	draft, err := input.toDraft()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	reservation := rc.Store.AddReservation(draft)
	c.JSON(http.StatusCreated, reservation)
}

// UpdateReservation replaces every field of an existing reservation except
// its ID and creation timestamp.
func (rc *ReservationController) UpdateReservation(c *gin.Context) {
	id := c.Param("id")
	var input ReservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	draft, err := input.toDraft()
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	updated := models.Reservation{
		ID:          id,
		ClientName:  draft.ClientName,
		Date:        draft.Date,
		Time:        draft.Time,
		Activity:    draft.Activity,
		Responsible: draft.Responsible,
		Seller:      draft.Seller,
		Price:       draft.Price,
		Cost:        draft.Cost,
		Commission:  draft.Commission,
		Status:      draft.Status,
		Notes:       draft.Notes,
		ManagedBy:   draft.ManagedBy,
	}
	if !rc.Store.UpdateReservation(updated) {
		utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		return
	}
	reservation, _ := rc.Store.Reservation(id)
	c.JSON(http.StatusOK, reservation)
}

// DeleteReservation removes a reservation. The destructive-action
// confirmation happens in the SPA before this endpoint is called.
func (rc *ReservationController) DeleteReservation(c *gin.Context) {
	if !rc.Store.DeleteReservation(c.Param("id")) {
		utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// SetReservationStatus changes only the status field
func (rc *ReservationController) SetReservationStatus(c *gin.Context) {
	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}
	status := models.ReservationStatus(input.Status)
	if !models.ValidStatus(status) {
		utils.RespondWithError(c, http.StatusBadRequest, "unknown reservation status")
		return
	}
	id := c.Param("id")
	if !rc.Store.SetStatus(id, status) {
		utils.RespondWithError(c, http.StatusNotFound, "Reservation not found")
		return
	}
	reservation, _ := rc.Store.Reservation(id)
	c.JSON(http.StatusOK, reservation)
}
