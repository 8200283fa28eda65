package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
	"golang.org/x/time/rate"

	"bizdesk/config"
	"bizdesk/internal/delivery"
	httpmiddleware "bizdesk/internal/delivery/http/middleware"
	"bizdesk/internal/delivery/http/router"
	"bizdesk/internal/delivery/http/validator"
	"bizdesk/internal/delivery/middleware"
	"bizdesk/internal/domain/lifecycle"
	"bizdesk/internal/errors"
	"bizdesk/internal/infra/metrics"
)

const metricsPath = "/metrics"

// HTTPParams holds dependencies for the HTTP server, injected by Fx.
type HTTPParams struct {
	fx.In

	Lc              fx.Lifecycle
	Config          *config.Config
	Logger          *slog.Logger
	Router          *router.Router
	ErrorMiddleware *httpmiddleware.ErrorMiddleware
	Metrics         *metrics.HTTP
	Registry        *prometheus.Registry
}

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// NewServer builds the echo server and registers its stop hook.
func NewServer(params HTTPParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params)

	srv := &httpServer{
		cfg:    params.Config,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho configures the echo instance: middleware chain, error handler,
// validator, /metrics and the route table dispatcher.
func NewEcho(params HTTPParams) *echo.Echo {
	cfg := params.Config

	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)

	// 3. Logger and metrics middleware
	echoServer.Use(middleware.NewLoggerMiddleware(params.Logger, cfg).Handle)
	echoServer.Use(middleware.NewMetricsMiddleware(params.Metrics).Handle)

	// 4. CORS middleware
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.HTTP.AllowOrigins,
	}))

	// 5. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// 6. Per-client rate limit, when configured
	if limit := cfg.HTTP.RateLimit; limit.RequestsPerSecond > 0 {
		echoServer.Use(echomiddleware.RateLimiter(echomiddleware.NewRateLimiterMemoryStoreWithConfig(
			echomiddleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(limit.RequestsPerSecond),
				Burst:     limit.Burst,
				ExpiresIn: limit.ExpiresIn,
			},
		)))
	}

	echoServer.HTTPErrorHandler = params.ErrorMiddleware.HandleHTTPError
	echoServer.Validator = validator.New()

	echoServer.GET(metricsPath, echo.WrapHandler(metrics.Handler(params.Registry)))
	params.Router.RegisterRoutes(echoServer)

	return echoServer
}

func (s *httpServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *httpServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
