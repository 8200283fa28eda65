package main

import (
	"context"
	"log/slog"
	"os"

	"go.uber.org/fx"

	"bizdesk/config"
	"bizdesk/internal/delivery"
	"bizdesk/internal/delivery/http"
	"bizdesk/internal/delivery/http/middleware"
	"bizdesk/internal/delivery/http/response"
	"bizdesk/internal/delivery/http/router"
	"bizdesk/internal/delivery/http/router/handler"
	"bizdesk/internal/infra/auth"
	logs "bizdesk/internal/infra/log"
	"bizdesk/internal/infra/metrics"
	"bizdesk/internal/infra/persistence/memory"
	"bizdesk/internal/infra/persistence/postgres"
	"bizdesk/internal/usecase/impl"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	cfg, err := config.New()
	if err != nil {
		slog.Error("Failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	fx.New(
		application(cfg),
		fx.Invoke(
			startServer,
		),
	).Run()
}

// application assembles every component except the server start.
func application(cfg *config.Config) fx.Option {
	return fx.Options(
		fx.Supply(cfg),
		injectInfra(),
		injectRepo(cfg),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
	)
}

func injectInfra() fx.Option {
	return fx.Provide(
		logs.New,
		logs.NewErrorLog,
		context.Background,
		metrics.NewRegistry,
		metrics.NewHTTP,
	)
}

func injectRepo(cfg *config.Config) fx.Option {
	if cfg.Storage.Driver == config.StorageDriverMemory {
		return memory.Module()
	}

	return postgres.Module()
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewReferenceChecker,
			impl.NewAuthService,
			impl.NewUserService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			response.NewWriter,
			handler.NewHealthHandler,
			handler.NewAuthHandler,
			handler.NewUserHandler,
			handler.NewCompanyHandler,
			handler.NewCustomerHandler,
			handler.NewSupplierHandler,
			handler.NewProductHandler,
			handler.NewProjectHandler,
			handler.NewTaskHandler,
			handler.NewInvoiceHandler,
			handler.NewEstimateHandler,
			handler.NewOrderFormHandler,
			handler.NewMessageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			router.NewTable,
			router.NewResolver,
			router.NewRouter,
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
