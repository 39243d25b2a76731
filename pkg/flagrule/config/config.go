package config

import "fmt"

// Storage backend names accepted in Cohort.Store.
const (
	StoreMemory   = "memory"
	StoreSQLite   = "sqlite"
	StorePostgres = "postgres"
)

// Settings is the on-disk configuration for an engine: the named flag
// definitions plus the cohort store selection. Hosts typically receive
// this file from remote config and hand it to flagrule.FromSettings.
type Settings struct {
	// Flags maps flag names to their gating expressions.
	Flags map[string]string `yaml:"flags" json:"flags"`

	// Cohort selects and configures the cohort value store.
	Cohort Cohort `yaml:"cohort" json:"cohort"`
}

// Cohort configures cohort percentage persistence.
type Cohort struct {
	// Store is the backend: "memory", "sqlite" (default), or "postgres".
	Store string `yaml:"store" json:"store"`

	// Path is the SQLite database file. Empty means the per-user
	// default location.
	Path string `yaml:"path" json:"path"`

	// DSN is the Postgres connection string.
	DSN string `yaml:"dsn" json:"dsn"`

	// Key fixes the cohort key for the percentage condition. Empty
	// means a generated, persisted per-install identity.
	Key string `yaml:"key" json:"key"`
}

// Validate checks that the settings are internally consistent.
func (s Settings) Validate() error {
	switch s.Cohort.Store {
	case "", StoreMemory, StoreSQLite:
	case StorePostgres:
		if s.Cohort.DSN == "" {
			return fmt.Errorf("cohort store %q requires a dsn", StorePostgres)
		}
	default:
		return fmt.Errorf("unknown cohort store %q", s.Cohort.Store)
	}
	return nil
}
