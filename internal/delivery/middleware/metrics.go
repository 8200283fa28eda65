package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	deliverycontext "bizdesk/internal/delivery/context"
	"bizdesk/internal/infra/metrics"
)

// unmatchedRoute labels requests that never reached a route, keeping label cardinality bounded.
const unmatchedRoute = "unmatched"

// MetricsMiddleware records request count, latency and in-flight requests per route pattern.
type MetricsMiddleware struct {
	metrics *metrics.HTTP
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(m *metrics.HTTP) *MetricsMiddleware {
	return &MetricsMiddleware{metrics: m}
}

// Handle instruments the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.metrics.InFlight.Inc()
		defer m.metrics.InFlight.Dec()

		start := time.Now()
		err := next(c)

		status := c.Response().Status
		if err != nil && !c.Response().Committed {
			status = statusOf(err)
		}

		route := deliverycontext.GetRoutePattern(c)
		if route == "" {
			route = unmatchedRoute
		}

		labels := []string{c.Request().Method, route, strconv.Itoa(status)}
		m.metrics.RequestsTotal.WithLabelValues(labels...).Inc()
		m.metrics.RequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}
