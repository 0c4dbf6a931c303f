package bitvec

import (
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitvec-specific context.
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
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithDimension adds a dimension field to the logger.
func (l *Logger) WithDimension(dim int) *Logger {
	return &Logger{
		Logger: l.Logger.With("dimension", dim),
	}
}

// LogAllocate logs the allocation of owned storage.
func (l *Logger) LogAllocate(dimension, words int) {
	l.Debug("storage allocated",
		"dimension", dimension,
		"words", words,
	)
}

// LogDisplace logs the creation of a displaced view.
func (l *Logger) LogDisplace(dimension, offset, targetDimension int) {
	l.Debug("displaced vector created",
		"dimension", dimension,
		"offset", offset,
		"target_dimension", targetDimension,
	)
}

// LogAdjust logs a reallocation.
func (l *Logger) LogAdjust(oldDimension, newDimension int, err error) {
	if err != nil {
		l.Warn("adjust failed",
			"old_dimension", oldDimension,
			"new_dimension", newDimension,
			"error", err,
		)
	} else {
		l.Debug("adjust completed",
			"old_dimension", oldDimension,
			"new_dimension", newDimension,
		)
	}
}

// LogExtend logs a push that had to grow the vector.
func (l *Logger) LogExtend(fillPointer, extension int) {
	l.Debug("vector extended on push",
		"fill_pointer", fillPointer,
		"extension", extension,
	)
}
