package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopMetricsDoesNothing(t *testing.T) {
	// Must not panic and must not touch any global state.
	m := NoopMetrics{}
	m.RecordEvaluation(context.Background(), true, time.Millisecond)
	m.RecordFlagEvaluation(context.Background(), "flag", false)
	m.RecordCohortDraw(context.Background())
}
