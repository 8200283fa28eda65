package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"

	"bizdesk/internal/delivery/http/response"
)

// ErrorMiddleware error handling middleware
type ErrorMiddleware struct {
	logger *slog.Logger
	writer *response.Writer
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, writer *response.Writer) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		writer: writer,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler. Every error a
// handler or middleware returns ends here and is rendered exactly once.
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if err == nil {
		return
	}

	if writeErr := m.writer.Error(c, err); writeErr != nil {
		m.logger.Error("Failed to write error response",
			slog.Any("error", writeErr),
			slog.String("path", c.Request().URL.Path),
			slog.String("method", c.Request().Method),
		)
	}
}
