package flagrule

import (
	"log/slog"

	"github.com/randalmurphal/flagrule/pkg/flagrule/cohort"
	"github.com/randalmurphal/flagrule/pkg/flagrule/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger attaches a structured logger. Evaluations log at Debug,
// cohort assignments at Info, store failures at Warn. A nil logger
// disables logging (the default).
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics attaches a metrics recorder. Use
// observability.NewMetricsRecorder() for OpenTelemetry metrics.
// Default: no-op.
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithCohortSource replaces the default in-memory cohort source.
// The engine takes ownership; Engine.Close closes it.
func WithCohortSource(s *cohort.Source) Option {
	return func(e *Engine) {
		if s != nil {
			e.cohort = s
		}
	}
}

// WithCohortKey fixes the key used for the percentage condition.
// Default: a generated per-install identity persisted in the cohort
// store, so each install buckets independently.
func WithCohortKey(key string) Option {
	return func(e *Engine) { e.cohortKey = key }
}

// WithFlags supplies named flag definitions for EvaluateFlag.
// The map must not be mutated after being handed to the engine.
func WithFlags(flags map[string]string) Option {
	return func(e *Engine) { e.flags = flags }
}

// WithoutProgramCache disables the compiled-program cache. Use when
// expressions are interpolated per call and would never repeat.
func WithoutProgramCache() Option {
	return func(e *Engine) { e.cacheDisabled = true }
}
