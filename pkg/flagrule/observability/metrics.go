package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records flagrule metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordEvaluation records one expression evaluation with its result
	// and duration.
	RecordEvaluation(ctx context.Context, result bool, duration time.Duration)

	// RecordFlagEvaluation records an evaluation of a named flag.
	RecordFlagEvaluation(ctx context.Context, flag string, result bool)

	// RecordCohortDraw records a first-access cohort assignment.
	RecordCohortDraw(ctx context.Context)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	evaluations     metric.Int64Counter
	evalLatency     metric.Float64Histogram
	flagEvaluations metric.Int64Counter
	cohortDraws     metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("flagrule")

	evaluations, err := meter.Int64Counter("flagrule.evaluations",
		metric.WithDescription("Number of expression evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("flagrule.evaluation.latency_ms",
		metric.WithDescription("Expression evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	flagEvaluations, err := meter.Int64Counter("flagrule.flag.evaluations",
		metric.WithDescription("Number of named flag evaluations"),
	)
	if err != nil {
		return nil, err
	}

	cohortDraws, err := meter.Int64Counter("flagrule.cohort.draws",
		metric.WithDescription("Number of first-access cohort assignments"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		evaluations:     evaluations,
		evalLatency:     evalLatency,
		flagEvaluations: flagEvaluations,
		cohortDraws:     cohortDraws,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the
// provider before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordEvaluation records one expression evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, result bool, duration time.Duration) {
	attrs := []attribute.KeyValue{
		attribute.Bool("result", result),
	}
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Microseconds())/1000.0, metric.WithAttributes(attrs...))
}

// RecordFlagEvaluation records a named flag evaluation.
func (m *otelMetrics) RecordFlagEvaluation(ctx context.Context, flag string, result bool) {
	m.flagEvaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("flag", flag),
		attribute.Bool("result", result),
	))
}

// RecordCohortDraw records a first-access cohort assignment.
func (m *otelMetrics) RecordCohortDraw(ctx context.Context) {
	m.cohortDraws.Add(ctx, 1)
}
