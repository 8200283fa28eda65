// Package response writes every HTTP outcome in one of two shapes: a status
// message {"result": "..."} or the raw serialized payload.
package response

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "bizdesk/internal/delivery/context"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/errors"
	logs "bizdesk/internal/infra/log"
)

// Result is the status-only envelope.
type Result struct {
	Result string `json:"result"`
}

// Writer renders responses and records every failure in the error sink.
type Writer struct {
	errorLog *logs.ErrorLog
}

// NewWriter creates the response writer.
func NewWriter(errorLog *logs.ErrorLog) *Writer {
	return &Writer{errorLog: errorLog}
}

// Status writes {"result": message}.
func (w *Writer) Status(c echo.Context, code int, message string) error {
	if c.Response().Committed {
		return nil
	}

	return c.JSON(code, Result{Result: message})
}

// Created writes 201 with a Location header pointing at the new resource.
func (w *Writer) Created(c echo.Context, location, message string) error {
	if c.Response().Committed {
		return nil
	}

	c.Response().Header().Set(echo.HeaderLocation, location)

	return c.JSON(http.StatusCreated, Result{Result: message})
}

// Data writes payload as is.
func (w *Writer) Data(c echo.Context, code int, payload any) error {
	if c.Response().Committed {
		return nil
	}

	return c.JSON(code, payload)
}

// NoContent writes 204 with an empty body.
func (w *Writer) NoContent(c echo.Context) error {
	if c.Response().Committed {
		return nil
	}

	return c.NoContent(http.StatusNoContent)
}

// Error maps err onto a status code and a client-safe message, logs the full
// error to the error sink and writes {"result": message}. Responses with a
// 5xx status always carry the generic internal error message.
func (w *Writer) Error(c echo.Context, err error) error {
	code, errorCode, message, details := describe(err)
	if code >= http.StatusInternalServerError {
		message = domainerrors.ErrInternalError.Message()
	}

	w.logError(c, err, code, errorCode, message, details)

	if c.Response().Committed {
		return nil
	}

	if c.Request().Method == http.MethodHead {
		return c.NoContent(code)
	}

	return c.JSON(code, Result{Result: message})
}

func describe(err error) (code int, errorCode, message, details string) {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if httpErr.Message != nil {
			message = fmt.Sprint(httpErr.Message)
		}

		return httpErr.Code, "HTTP_ERROR", message, ""
	}

	return http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(), domainerrors.ErrInternalError.Message(), ""
}

func (w *Writer) logError(c echo.Context, err error, code int, errorCode, message, details string) {
	req := c.Request()
	attrs := []slog.Attr{
		slog.String("request_id", deliverycontext.GetRequestIDFromContext(req.Context())),
		slog.String("method", req.Method),
		slog.String("path", req.URL.RequestURI()),
		slog.Int("status", code),
		slog.String("code", errorCode),
		slog.String("message", message),
		slog.String("error", err.Error()),
	}
	if details != "" {
		attrs = append(attrs, slog.String("details", details))
	}

	level := slog.LevelWarn
	if code >= http.StatusInternalServerError {
		level = slog.LevelError
		// Keep the stack for unexpected failures.
		attrs = append(attrs, slog.String("stack", fmt.Sprintf("%+v", err)))
	}

	w.errorLog.LogAttrs(req.Context(), level, "request failed", attrs...)
}
