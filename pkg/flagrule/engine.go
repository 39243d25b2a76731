package flagrule

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/randalmurphal/flagrule/pkg/flagrule/cohort"
	"github.com/randalmurphal/flagrule/pkg/flagrule/observability"
)

// maxCachedPrograms bounds the compiled-program cache. Conversion is a
// pure function of the expression string, so the cache is reset rather
// than evicted when full; hot expressions repopulate immediately.
const maxCachedPrograms = 1024

// Engine evaluates gating expressions against a host-supplied fact
// provider and a persisted cohort source. Construct with New; an Engine
// is safe for concurrent use.
//
// Evaluate never returns an error: malformed expressions, unknown
// conditions, absent facts, and failed coercions all resolve to false.
// A feature gate must never take the host down, so the safe answer
// under any ambiguity is "feature off".
type Engine struct {
	provider  ConditionValueProvider
	cohort    *cohort.Source
	cohortKey string
	flags     map[string]string
	logger    *slog.Logger
	metrics   observability.MetricsRecorder

	cacheDisabled bool
	cacheMu       sync.RWMutex
	cache         map[string][]Token
}

// New creates an Engine over the given provider. Without
// WithCohortSource, cohort percentages live in an in-memory store and
// do not survive restarts; production hosts should back the source with
// SQLite or Postgres.
func New(provider ConditionValueProvider, opts ...Option) *Engine {
	e := &Engine{
		provider: provider,
		metrics:  observability.NoopMetrics{},
		cache:    make(map[string][]Token),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.provider == nil {
		e.provider = StaticProvider{}
	}
	if e.cohort == nil {
		e.cohort = cohort.NewSource(cohort.NewMemoryStore())
	}
	e.cohort.OnDraw(func(key string, value float64) {
		observability.LogCohortDraw(e.logger, key, value)
		e.metrics.RecordCohortDraw(context.Background())
	})
	return e
}

// Evaluate evaluates one gating expression against the current facts
// and returns the gate decision. It is a total function: every input,
// however malformed, yields a definite boolean.
func (e *Engine) Evaluate(expr string) bool {
	start := time.Now()
	result := evalPostfix(e.program(expr), e.snapshot())
	elapsed := time.Since(start)

	observability.LogEvaluation(e.logger, expr, result, float64(elapsed.Microseconds())/1000.0)
	e.metrics.RecordEvaluation(context.Background(), result, elapsed)
	return result
}

// EvaluateFlag evaluates the named flag from the configured flag set.
// Unknown flags resolve to false.
func (e *Engine) EvaluateFlag(name string) bool {
	expr, ok := e.flags[name]
	if !ok {
		observability.LogUnknownFlag(e.logger, name)
		e.metrics.RecordFlagEvaluation(context.Background(), name, false)
		return false
	}
	result := e.Evaluate(expr)
	e.metrics.RecordFlagEvaluation(context.Background(), name, result)
	return result
}

// ValueFor returns the current value of a condition as expression text.
// Read-only inspection helper; ok is false when the provider has no
// value and, for percentage, the cohort lookup failed.
func (e *Engine) ValueFor(c Condition) (string, bool) {
	v, ok := e.snapshot()[c]
	if !ok {
		return "", false
	}
	return v.String(), true
}

// CohortPercentage returns the stable cohort percentage in [0,100) for
// an explicit key, drawing and persisting one on first access.
func (e *Engine) CohortPercentage(key string) (float64, error) {
	return e.cohort.Percentage(key)
}

// Close closes the engine's cohort source and its backing store.
func (e *Engine) Close() error {
	return e.cohort.Close()
}

// program returns the compiled postfix program for an expression,
// cached unless the cache is disabled.
func (e *Engine) program(expr string) []Token {
	if e.cacheDisabled {
		return ToPostfix(Tokenize(expr))
	}

	e.cacheMu.RLock()
	program, ok := e.cache[expr]
	e.cacheMu.RUnlock()
	if ok {
		return program
	}

	program = ToPostfix(Tokenize(expr))

	e.cacheMu.Lock()
	if len(e.cache) >= maxCachedPrograms {
		e.cache = make(map[string][]Token, maxCachedPrograms)
	}
	e.cache[expr] = program
	e.cacheMu.Unlock()

	return program
}

// snapshot takes the single fact snapshot used by one evaluation.
// The percentage condition is filled from the cohort source unless the
// provider already supplies it (tests do, to pin a value).
func (e *Engine) snapshot() Facts {
	facts := e.provider.Snapshot()
	if facts == nil {
		facts = Facts{}
	}
	if _, ok := facts[ConditionPercentage]; ok {
		return facts
	}

	key, err := e.resolveCohortKey()
	if err != nil {
		observability.LogCohortError(e.logger, key, "resolve key", err)
		return facts
	}
	pct, err := e.cohort.Percentage(key)
	if err != nil {
		// Absent percentage makes rollout rules resolve to false.
		observability.LogCohortError(e.logger, key, "percentage", err)
		return facts
	}
	return facts.with(ConditionPercentage, FloatValue(pct))
}

// resolveCohortKey returns the configured cohort key, or the persisted
// per-install identity when none is configured.
func (e *Engine) resolveCohortKey() (string, error) {
	if e.cohortKey != "" {
		return e.cohortKey, nil
	}
	return e.cohort.InstallID()
}
