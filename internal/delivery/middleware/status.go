package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
)

// statusOf predicts the status the HTTP error handler will render for err.
func statusOf(err error) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	return http.StatusInternalServerError
}
