// Package logging builds the service's slog loggers.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// NoOpLogger discards everything; used in tests.
var NoOpLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// NewLogger returns the process logger. Development gets human-readable
// text at debug level; everything else logs JSON at info.
func NewLogger(env string) *slog.Logger {
	if env == "development" {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}
