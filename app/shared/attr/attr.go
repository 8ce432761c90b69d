// Package attr provides the slog attribute helpers used across every
// service operation, so log fields keep consistent keys and types.
package attr

import (
	"context"
	"log/slog"
)

type contextKey string

// CorrelationIDKey carries the correlation ID of the message or request
// that triggered the current operation.
const CorrelationIDKey contextKey = "correlation_id"

func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Bool(key string, value bool) slog.Attr { return slog.Bool(key, value) }

func Any(key string, value any) slog.Attr { return slog.Any(key, value) }

func Error(err error) slog.Attr { return slog.Any("error", err) }

// WithCorrelationID returns a context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

// ExtractCorrelationID pulls the correlation ID out of the context for
// logging; missing IDs log as an empty string rather than being omitted,
// which keeps log lines greppable.
func ExtractCorrelationID(ctx context.Context) slog.Attr {
	if id, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return slog.String("correlation_id", id)
	}
	return slog.String("correlation_id", "")
}
