package models

// ReservationStatus is the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusConsulta  ReservationStatus = "Consulta"
	StatusPagado    ReservationStatus = "Pagado"
	StatusReservado ReservationStatus = "Reservado"
	StatusCerrado   ReservationStatus = "Cerrado"
)

// ValidStatus reports whether s is one of the known reservation statuses
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusConsulta, StatusPagado, StatusReservado, StatusCerrado:
		return true
	}
	return false
}

// ResponsibleUnassigned is the sentinel used when no guide has been assigned yet
const ResponsibleUnassigned = "Por asignar"

// Sellers are the known sales channels shown in the form
var Sellers = []string{"Mahana Tours", "Playa Caracol", "Otros"}

// DefaultSeller is used when the form does not specify a sales channel
const DefaultSeller = "Mahana Tours"

type Reservation struct {
	ID          string            `json:"id"`
	ClientName  string            `json:"clientName"`
	Date        string            `json:"date"` // YYYY-MM-DD
	Time        string            `json:"time"` // HH:MM, may be empty
	Activity    string            `json:"activity"`
	Responsible string            `json:"responsible"`
	Seller      string            `json:"seller"`
	Price       float64           `json:"price"`
	Cost        float64           `json:"cost"`
	Commission  float64           `json:"commission"` // percentage 0-100
	Status      ReservationStatus `json:"status"`
	Notes       string            `json:"notes,omitempty"`
	ManagedBy   string            `json:"managedBy,omitempty"`
	CreatedAt   int64             `json:"createdAt"` // Unix milliseconds
}

// ReservationDraft carries the validated form fields of a reservation
// before the store assigns an ID and creation timestamp.
type ReservationDraft struct {
	ClientName  string
	Date        string
	Time        string
	Activity    string
	Responsible string
	Seller      string
	Price       float64
	Cost        float64
	Commission  float64
	Status      ReservationStatus
	Notes       string
	ManagedBy   string
}

// CommissionAmount is the absolute commission owed for the reservation
func (r Reservation) CommissionAmount() float64 {
	return r.Price * r.Commission / 100
}

// NetProfit is the revenue left after operational cost and commission
func (r Reservation) NetProfit() float64 {
	return r.Price - r.Cost - r.CommissionAmount()
}

// SortTime returns the time used for chronological ordering, substituting
// the synthetic minimum for reservations without a time of day.
func (r Reservation) SortTime() string {
	if r.Time == "" {
		return "00:00"
	}
	return r.Time
}
