package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"bizdesk/internal/domain/service"
	logs "bizdesk/internal/infra/log"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	// KeyRequestID is the key for storing request ID in context.
	KeyRequestID ContextKey = "request_id"

	// KeyPrincipal is the key for storing the authenticated principal in echo.Context.
	KeyPrincipal ContextKey = "principal"

	// KeyRoutePattern is the key for storing the matched route pattern in echo.Context.
	KeyRoutePattern ContextKey = "route_pattern"

	// HeaderXRequestID is the HTTP header name for request ID.
	HeaderXRequestID = "X-Request-Id"
)

// GetRequestID extracts the request ID from echo.Context.
// If not found, generates a new UUID.
func GetRequestID(c echo.Context) string {
	val := c.Get(string(KeyRequestID))
	if id, ok := val.(string); ok && id != "" {
		return id
	}

	return uuid.New().String()
}

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestIDFromContext extracts the request ID from standard context.Context.
// If not found, returns empty string.
func GetRequestIDFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(KeyRequestID).(string); ok {
		return id
	}

	return ""
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetLoggerOrDefault extracts the request-scoped logger from context.Context.
// If not found, returns the provided fallback logger.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	return logs.FromContext(ctx, fallback)
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return logs.WithContext(ctx, logger)
}

// SetPrincipal stores the authenticated principal for downstream handlers.
func SetPrincipal(c echo.Context, principal *service.Principal) {
	c.Set(string(KeyPrincipal), principal)
}

// GetPrincipal returns the principal stored by the auth middleware, if any.
func GetPrincipal(c echo.Context) (*service.Principal, bool) {
	principal, ok := c.Get(string(KeyPrincipal)).(*service.Principal)

	return principal, ok && principal != nil
}

// SetRoutePattern records the route pattern the request was dispatched to.
func SetRoutePattern(c echo.Context, pattern string) {
	c.Set(string(KeyRoutePattern), pattern)
}

// GetRoutePattern returns the matched route pattern, or "" when dispatch did not match.
func GetRoutePattern(c echo.Context) string {
	pattern, _ := c.Get(string(KeyRoutePattern)).(string)

	return pattern
}
