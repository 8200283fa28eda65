package logs

import (
	"context"
	"log/slog"
)

type loggerContextKey struct{}

// WithContext returns a copy of ctx carrying a request-scoped logger.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the request-scoped logger carried by ctx, or fallback.
func FromContext(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(loggerContextKey{}).(*slog.Logger); ok && logger != nil {
			return logger
		}
	}

	return fallback
}
