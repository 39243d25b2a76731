// Package cohort provides stable per-install cohort percentages for
// percentage-based rollout rules, backed by pluggable persistence.
package cohort

import "errors"

// Store persists one scalar value per key.
// Implementations must be safe for concurrent use.
type Store interface {
	// Load retrieves the value for key.
	// Returns ErrNotFound if no value has been stored.
	Load(key string) (string, error)

	// Save stores a value for key, overwriting any existing value.
	Save(key, value string) error

	// SaveIfAbsent stores value only if key has no value yet, and
	// returns the value that won: the existing one if present,
	// otherwise the given one. This is the first-writer-wins primitive
	// that keeps cohort assignment stable under concurrent first access.
	SaveIfAbsent(key, value string) (string, error)

	// Delete removes the value for key.
	// Returns nil if no value exists.
	Delete(key string) error

	// Close releases any resources (connections, files).
	Close() error
}

// Sentinel errors for store operations.
var (
	// ErrNotFound indicates no value is stored for the key.
	ErrNotFound = errors.New("cohort value not found")

	// ErrStoreClosed indicates the store has been closed.
	ErrStoreClosed = errors.New("cohort store closed")
)
