package storage

import "errors"

// Storage keys for the two persisted collections.
const (
	KeyCategories   = "categories"
	KeyReservations = "reservations"
)

// ErrNotFound is returned by Load when no value has been stored under a key.
var ErrNotFound = errors.New("storage: key not found")

// Adapter persists named blobs to a durable key-value store. Implementations
// must round-trip values losslessly; interpreting the bytes is the caller's
// concern. Save is best-effort from the application's point of view: the
// in-memory state stays authoritative whether or not it succeeds.
type Adapter interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
