package sqrtgo

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with sqrtgo-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithValue adds an input value field to the logger.
func (l *Logger) WithValue(x float64) *Logger {
	return &Logger{
		Logger: l.Logger.With("value", x),
	}
}

// WithCount adds a count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// LogSolve logs a single square-root computation.
func (l *Logger) LogSolve(x float64, err error) {
	if err != nil {
		l.Error("solve failed",
			"value", x,
			"error", err,
		)
	} else {
		l.Debug("solve completed",
			"value", x,
		)
	}
}

// LogBatch logs a batch computation.
func (l *Logger) LogBatch(count int, err error) {
	if err != nil {
		l.Error("batch failed",
			"count", count,
			"error", err,
		)
	} else {
		l.Debug("batch completed",
			"count", count,
		)
	}
}

// LogOffload logs an offloaded computation.
func (l *Logger) LogOffload(ctx context.Context, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "offloaded computation failed",
			"count", count,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "offloaded computation completed",
			"count", count,
		)
	}
}
