package cohort

import (
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/adrg/xdg"
	"github.com/google/uuid"
)

// installIDKey is the store key holding the per-install identity.
// It shares the key namespace with cohort percentages.
const installIDKey = "install.id"

// Source hands out stable cohort percentages. The first access for a
// key draws uniformly from [0,100) and persists the draw; every later
// access returns the persisted value unchanged, across restarts, for
// the life of the install. Re-randomizing would silently move users in
// and out of a rollout, so stability is the whole contract here.
//
// Source is safe for concurrent use.
type Source struct {
	store     Store
	mu        sync.Mutex
	randFloat func() float64
	onDraw    func(key string, value float64)
	installID string // memoized after first successful resolution
}

// SourceOption configures a Source.
type SourceOption func(*Source)

// WithRandFloat replaces the uniform [0,1) draw used for new cohort
// values. Intended for deterministic tests.
func WithRandFloat(fn func() float64) SourceOption {
	return func(s *Source) {
		if fn != nil {
			s.randFloat = fn
		}
	}
}

// WithDrawHook registers a callback invoked whenever a first access
// draws and persists a new cohort value. Hosts hang logging and metrics
// off this without the source knowing about either.
func WithDrawHook(fn func(key string, value float64)) SourceOption {
	return func(s *Source) { s.onDraw = fn }
}

// OnDraw sets the draw callback if none was configured at construction.
// An explicitly configured WithDrawHook wins.
func (s *Source) OnDraw(fn func(key string, value float64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.onDraw == nil {
		s.onDraw = fn
	}
}

// NewSource creates a Source over the given store. The source takes
// ownership of the store; Close closes it.
func NewSource(store Store, opts ...SourceOption) *Source {
	s := &Source{
		store:     store,
		randFloat: rand.Float64,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Percentage returns the stable cohort percentage in [0,100) for key,
// drawing and persisting one on first access. The mutex serializes
// in-process callers; SaveIfAbsent makes the first write win even when
// another process races on a shared store.
func (s *Source) Percentage(key string) (float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.store.Load(key)
	if errors.Is(err, ErrNotFound) {
		drawn := s.randFloat() * 100
		raw, err = s.store.SaveIfAbsent(key, strconv.FormatFloat(drawn, 'f', -1, 64))
		if err == nil && s.onDraw != nil {
			if won, perr := strconv.ParseFloat(raw, 64); perr == nil {
				s.onDraw(key, won)
			}
		}
	}
	if err != nil {
		return 0, err
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("cohort value for %q: %w", key, err)
	}
	return value, nil
}

// InstallID returns the stable per-install identity, generating and
// persisting a UUID on first access. Engines use it as the default
// cohort key, so percentage rules bucket per install out of the box.
func (s *Source) InstallID() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.installID != "" {
		return s.installID, nil
	}

	id, err := s.store.Load(installIDKey)
	if errors.Is(err, ErrNotFound) {
		id, err = s.store.SaveIfAbsent(installIDKey, uuid.NewString())
	}
	if err != nil {
		return "", err
	}
	s.installID = id
	return id, nil
}

// Close closes the underlying store.
func (s *Source) Close() error {
	return s.store.Close()
}

// DefaultPath returns the default on-disk location for a SQLite-backed
// store, under the user's XDG data directory. Parent directories are
// created if missing.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join("flagrule", "cohort.db"))
}
