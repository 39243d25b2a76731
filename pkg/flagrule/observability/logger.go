// Package observability provides structured logging and metrics helpers
// for flagrule engines.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds flag context to a logger.
// Returns a new logger with a flag field.
func EnrichLogger(logger *slog.Logger, flag string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("flag", flag))
}

// LogEvaluation logs one expression evaluation.
func LogEvaluation(logger *slog.Logger, expr string, result bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("expression evaluated",
		slog.String("expression", expr),
		slog.Bool("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogUnknownFlag logs an evaluation request for a flag with no
// definition. The evaluation itself resolves to false.
func LogUnknownFlag(logger *slog.Logger, flag string) {
	if logger == nil {
		return
	}
	logger.Warn("unknown flag, resolving to false",
		slog.String("flag", flag),
	)
}

// LogCohortDraw logs a first-access cohort draw.
func LogCohortDraw(logger *slog.Logger, key string, value float64) {
	if logger == nil {
		return
	}
	logger.Info("cohort percentage assigned",
		slog.String("key", key),
		slog.Float64("value", value),
	)
}

// LogCohortError logs a cohort store failure (non-fatal; the
// evaluation resolves fail-closed).
func LogCohortError(logger *slog.Logger, key string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("cohort store failed",
		slog.String("key", key),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in
// milliseconds.
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000.0
	}
}
