package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bizdesk/config"
	deliverycontext "bizdesk/internal/delivery/context"
	domainerrors "bizdesk/internal/domain/errors"
	"bizdesk/internal/infra/metrics"
)

func TestRequestIDMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewRequestIDMiddleware(logger)

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated", incoming: ""},
		{name: "propagated", incoming: "client-id-1", keep: true},
		{name: "oversized", incoming: strings.Repeat("x", 200)},
		{name: "with spaces", incoming: "forged id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			if tt.incoming != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.incoming)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			var seen string
			err := mw.Process(func(c echo.Context) error {
				seen = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				assert.NotSame(t, logger, deliverycontext.GetLoggerOrDefault(c.Request().Context(), logger))

				return nil
			})(c)
			require.NoError(t, err)

			assert.NotEmpty(t, seen)
			assert.Equal(t, seen, rec.Header().Get(deliverycontext.HeaderXRequestID))
			assert.Equal(t, seen, deliverycontext.GetRequestID(c))
			if tt.keep {
				assert.Equal(t, tt.incoming, seen)
			} else {
				assert.NotEqual(t, tt.incoming, seen)
			}
		})
	}
}

func TestLoggerMiddleware_LogsStatusOfReturnedError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	mw := NewLoggerMiddleware(logger, &config.Config{})

	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/companies/9", nil), httptest.NewRecorder())
	deliverycontext.SetRoutePattern(c, "/companies/{id:int}")

	err := mw.Handle(func(echo.Context) error {
		return domainerrors.ErrNotFound
	})(c)
	require.Error(t, err)

	line := buf.String()
	assert.Contains(t, line, `"level":"WARN"`)
	assert.Contains(t, line, `"status":404`)
	assert.Contains(t, line, `"route":"/companies/{id:int}"`)
	assert.NotContains(t, line, "user_agent")
}

func TestMetricsMiddleware(t *testing.T) {
	httpMetrics := metrics.NewHTTP(metrics.NewRegistry())
	mw := NewMetricsMiddleware(httpMetrics)
	e := echo.New()

	ok := e.NewContext(httptest.NewRequest(http.MethodGet, "/companies/1", nil), httptest.NewRecorder())
	require.NoError(t, mw.Handle(func(c echo.Context) error {
		deliverycontext.SetRoutePattern(c, "/companies/{id:int}")

		return c.NoContent(http.StatusOK)
	})(ok))

	missing := e.NewContext(httptest.NewRequest(http.MethodGet, "/nope", nil), httptest.NewRecorder())
	require.Error(t, mw.Handle(func(echo.Context) error {
		return domainerrors.ErrRouteNotFound
	})(missing))

	assert.InDelta(t, 1.0, testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues(http.MethodGet, "/companies/{id:int}", "200")), 0.001)
	assert.InDelta(t, 1.0, testutil.ToFloat64(httpMetrics.RequestsTotal.WithLabelValues(http.MethodGet, unmatchedRoute, "404")), 0.001)
	assert.InDelta(t, 0.0, testutil.ToFloat64(httpMetrics.InFlight), 0.001)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusMethodNotAllowed, statusOf(domainerrors.ErrMethodNotAllowed))
	assert.Equal(t, http.StatusRequestEntityTooLarge, statusOf(echo.ErrStatusRequestEntityTooLarge))
	assert.Equal(t, http.StatusInternalServerError, statusOf(assert.AnError))
}
