package middleware

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"bizdesk/config"
	deliverycontext "bizdesk/internal/delivery/context"
)

// LoggerMiddleware logs one line per request
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Execute next handler
		err := next(c)

		m.logRequest(c, start, err)

		return err
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	// An error not yet rendered is written later by the HTTP error handler.
	status := res.Status
	if err != nil && !res.Committed {
		status = statusOf(err)
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.String("route", deliverycontext.GetRoutePattern(c)),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
	}

	if m.debug {
		fields = append(fields, slog.String("user_agent", req.UserAgent()))

		// If there are query parameters, log them too
		if len(req.URL.RawQuery) > 0 {
			fields = append(fields, slog.String("query", req.URL.RawQuery))
		}
	}

	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	// Choose log level based on status code
	logLevel := slog.LevelInfo
	if status >= 400 {
		logLevel = slog.LevelWarn
	}
	if status >= 500 {
		logLevel = slog.LevelError
	}

	ctx := req.Context()
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, logLevel, "HTTP Request", fields...)
}
