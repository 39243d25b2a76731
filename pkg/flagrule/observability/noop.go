package observability

import (
	"context"
	"time"
)

// NoopMetrics is a MetricsRecorder that does nothing.
// Use when metrics are disabled to avoid overhead.
type NoopMetrics struct{}

// Compile-time interface check.
var _ MetricsRecorder = NoopMetrics{}

// RecordEvaluation does nothing.
func (NoopMetrics) RecordEvaluation(_ context.Context, _ bool, _ time.Duration) {}

// RecordFlagEvaluation does nothing.
func (NoopMetrics) RecordFlagEvaluation(_ context.Context, _ string, _ bool) {}

// RecordCohortDraw does nothing.
func (NoopMetrics) RecordCohortDraw(_ context.Context) {}
