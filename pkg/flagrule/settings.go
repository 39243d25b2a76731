package flagrule

import (
	"fmt"

	"github.com/randalmurphal/flagrule/pkg/flagrule/cohort"
	"github.com/randalmurphal/flagrule/pkg/flagrule/config"
)

// FromSettings builds an Engine from loaded settings: the settings
// choose the cohort store and flag set, and any extra options apply on
// top. The returned engine owns the store; close it with Engine.Close.
func FromSettings(settings config.Settings, provider ConditionValueProvider, opts ...Option) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	store, err := openStore(settings.Cohort)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithCohortSource(cohort.NewSource(store)),
		WithFlags(settings.Flags),
	}
	if settings.Cohort.Key != "" {
		base = append(base, WithCohortKey(settings.Cohort.Key))
	}

	return New(provider, append(base, opts...)...), nil
}

// openStore opens the configured cohort store backend.
func openStore(c config.Cohort) (cohort.Store, error) {
	switch c.Store {
	case config.StoreMemory:
		return cohort.NewMemoryStore(), nil

	case "", config.StoreSQLite:
		path := c.Path
		if path == "" {
			var err error
			path, err = cohort.DefaultPath()
			if err != nil {
				return nil, fmt.Errorf("default cohort path: %w", err)
			}
		}
		return cohort.NewSQLiteStore(path)

	case config.StorePostgres:
		return cohort.NewPostgresStore(c.DSN)

	default:
		return nil, fmt.Errorf("unknown cohort store %q", c.Store)
	}
}
