// Package logging configures the structured logger.
//
// The terminal belongs to the TUI, so logs go to a file (or nowhere) rather
// than stdout.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logger is the application-wide structured logger instance.
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// ParseLevel maps "debug", "info", "warn" and "error" to a slog level.
// Anything else is info.
func ParseLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger initializes the global logger writing to w.
// format: "json" or "text" (defaults to "text")
func InitLogger(w io.Writer, level, format string) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(level),
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	Logger = slog.New(handler)
	slog.SetDefault(Logger)
	return Logger
}

// OpenFile creates (or appends to) the log file at path and initializes the
// global logger on it. The caller closes the returned file.
func OpenFile(path, level, format string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	InitLogger(f, level, format)
	return f, nil
}

// WithComponent returns a logger with a component field.
func WithComponent(name string) *slog.Logger {
	return Logger.With("component", name)
}
