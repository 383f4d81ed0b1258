package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"reservas-backend/models"
	"reservas-backend/storage"
)

// Store owns the category and reservation collections. It is the single
// source of truth for the API: every mutation goes through one of its
// methods and triggers a best-effort save of the affected collection.
// Readers only ever receive snapshot copies, never the backing slices.
type Store struct {
	mu           sync.RWMutex
	reservations []models.Reservation
	categories   []models.Category
	adapter      storage.Adapter
	logger       *zap.Logger
}

// New loads both collections from the adapter. A missing or unparseable
// reservations blob falls back to an empty collection; a missing,
// unparseable or empty categories blob falls back to the seed defaults.
// Read failures are logged, never surfaced.
func New(adapter storage.Adapter, logger *zap.Logger) *Store {
	s := &Store{adapter: adapter, logger: logger}

	var reservations []models.Reservation
	if err := s.load(storage.KeyReservations, &reservations); err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("could not load reservations, starting empty", zap.Error(err))
		}
		reservations = nil
	}
	s.reservations = reservations

	var categories []models.Category
	err := s.load(storage.KeyCategories, &categories)
	if err != nil || len(categories) == 0 {
		if err != nil && !errors.Is(err, storage.ErrNotFound) {
			logger.Warn("could not load categories, using defaults", zap.Error(err))
		}
		categories = models.DefaultCategories()
	}
	s.categories = categories

	return s
}

func (s *Store) load(key string, out interface{}) error {
	data, err := s.adapter.Load(key)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}

// persist saves one collection. Failures are logged and swallowed: the
// in-memory state stays authoritative for the session either way.
func (s *Store) persist(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		s.logger.Warn("could not serialize collection", zap.String("key", key), zap.Error(err))
		return
	}
	if err := s.adapter.Save(key, data); err != nil {
		s.logger.Warn("could not persist collection", zap.String("key", key), zap.Error(err))
	}
}

// AddReservation assigns a fresh ID and creation timestamp to the draft and
// appends it. Field validation is the caller's responsibility; the store
// never rejects a draft.
func (s *Store) AddReservation(draft models.ReservationDraft) models.Reservation {
	reservation := models.Reservation{
		ID:          uuid.NewString(),
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
		CreatedAt:   time.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reservations = append(s.reservations, reservation)
	s.persist(storage.KeyReservations, s.reservations)
	return reservation
}

// UpdateReservation replaces the entry matching res.ID, keeping the stored
// ID and creation timestamp. An unknown ID is a silent no-op (the record
// may have been deleted from another tab) and reports false.
func (s *Store) UpdateReservation(res models.Reservation) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reservations {
		if existing.ID == res.ID {
			res.CreatedAt = existing.CreatedAt
			s.reservations[i] = res
			s.persist(storage.KeyReservations, s.reservations)
			return true
		}
	}
	return false
}

// DeleteReservation removes the entry with the given ID and reports whether
// anything matched.
func (s *Store) DeleteReservation(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.reservations {
		if existing.ID == id {
			s.reservations = append(s.reservations[:i], s.reservations[i+1:]...)
			s.persist(storage.KeyReservations, s.reservations)
			return true
		}
	}
	return false
}

// SetStatus replaces only the status field of the matching entry.
func (s *Store) SetStatus(id string, status models.ReservationStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.reservations {
		if s.reservations[i].ID == id {
			s.reservations[i].Status = status
			s.persist(storage.KeyReservations, s.reservations)
			return true
		}
	}
	return false
}

// ReplaceCategories swaps the whole catalogue, as the spreadsheet import does.
func (s *Store) ReplaceCategories(categories []models.Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories = append([]models.Category(nil), categories...)
	s.persist(storage.KeyCategories, s.categories)
}

// Reservations returns a snapshot copy of the reservation collection.
func (s *Store) Reservations() []models.Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Reservation(nil), s.reservations...)
}

// Categories returns a snapshot copy of the category collection.
func (s *Store) Categories() []models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Category(nil), s.categories...)
}

// Reservation looks up a single entry by ID.
func (s *Store) Reservation(id string) (models.Reservation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, existing := range s.reservations {
		if existing.ID == id {
			return existing, true
		}
	}
	return models.Reservation{}, false
}
