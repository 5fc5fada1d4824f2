package ergolist

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with list-specific helpers.
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

// LogGrow logs a capacity growth, noting whether it resized in place.
func (l *Logger) LogGrow(oldCap, newCap int, remapped bool) {
	l.Debug("capacity grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"remapped", remapped,
	)
}

// LogShrink logs a capacity shrink. kept reports whether the larger
// allocation was retained because the allocator could not produce a smaller
// one.
func (l *Logger) LogShrink(oldCap, newCap int, kept bool) {
	if kept {
		l.Warn("shrink kept larger allocation",
			"old_cap", oldCap,
			"requested_cap", newCap,
		)
	} else {
		l.Debug("capacity shrunk",
			"old_cap", oldCap,
			"new_cap", newCap,
		)
	}
}

// LogRelease logs the release of a list's buffer.
func (l *Logger) LogRelease(capacity int) {
	l.Debug("buffer released",
		"cap", capacity,
	)
}
