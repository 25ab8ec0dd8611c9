package mapper

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with mapper-specific fields.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// A nil handler falls back to a text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}

	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger writing JSON lines to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NewTextLogger creates a Logger writing human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// NoopLogger creates a Logger that discards everything.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithObjective adds an objective field to the logger.
func (l *Logger) WithObjective(o Objective) *Logger {
	return &Logger{Logger: l.Logger.With("objective", o.String())}
}

// LogMap logs one solved (or failed) transition of n pairs.
func (l *Logger) LogMap(ctx context.Context, n int, cost float64, elapsed time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "map failed",
			"n", n,
			"elapsed", elapsed,
			"error", err,
		)

		return
	}
	l.DebugContext(ctx, "map completed",
		"n", n,
		"cost", cost,
		"elapsed", elapsed,
	)
}

// LogBatch logs the outcome of a MapBatch call.
func (l *Logger) LogBatch(ctx context.Context, count int, elapsed time.Duration, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch aborted",
			"count", count,
			"elapsed", elapsed,
			"error", err,
		)

		return
	}
	l.InfoContext(ctx, "batch completed",
		"count", count,
		"elapsed", elapsed,
	)
}
