package cohort

import (
	"database/sql"
	"fmt"
	"sync"

	_ "github.com/lib/pq" // Postgres driver
)

// PostgresStore persists cohort values to Postgres. Use it when rollout
// bucketing is computed server-side and must be shared across hosts; the
// SaveIfAbsent conflict clause gives first-writer-wins across the fleet.
type PostgresStore struct {
	db     *sql.DB
	mu     sync.RWMutex
	closed bool
}

// NewPostgresStore opens a connection with the given DSN and ensures
// the backing table exists.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	store, err := NewPostgresStoreDB(db)
	if err != nil {
		db.Close()
		return nil, err
	}
	return store, nil
}

// NewPostgresStoreDB wraps an existing connection pool. The caller keeps
// ownership of db only until the store is closed.
func NewPostgresStoreDB(db *sql.DB) (*PostgresStore, error) {
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS cohort_values (
			key TEXT NOT NULL PRIMARY KEY,
			value TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`); err != nil {
		return nil, fmt.Errorf("create table: %w", err)
	}
	return &PostgresStore{db: db}, nil
}

// Load implements Store.
func (s *PostgresStore) Load(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	var value string
	err := s.db.QueryRow(`
		SELECT value FROM cohort_values WHERE key = $1
	`, key).Scan(&value)

	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load cohort value: %w", err)
	}
	return value, nil
}

// Save implements Store.
func (s *PostgresStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`
		INSERT INTO cohort_values (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value
	`, key, value); err != nil {
		return fmt.Errorf("save cohort value: %w", err)
	}
	return nil
}

// SaveIfAbsent implements Store.
func (s *PostgresStore) SaveIfAbsent(key, value string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrStoreClosed
	}

	if _, err := s.db.Exec(`
		INSERT INTO cohort_values (key, value)
		VALUES ($1, $2)
		ON CONFLICT (key) DO NOTHING
	`, key, value); err != nil {
		return "", fmt.Errorf("save cohort value: %w", err)
	}

	var won string
	if err := s.db.QueryRow(`
		SELECT value FROM cohort_values WHERE key = $1
	`, key).Scan(&won); err != nil {
		return "", fmt.Errorf("read cohort value: %w", err)
	}
	return won, nil
}

// Delete implements Store.
func (s *PostgresStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrStoreClosed
	}

	if _, err := s.db.Exec(`
		DELETE FROM cohort_values WHERE key = $1
	`, key); err != nil {
		return fmt.Errorf("delete cohort value: %w", err)
	}
	return nil
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}

	s.closed = true
	return s.db.Close()
}
