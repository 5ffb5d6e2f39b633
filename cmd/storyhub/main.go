package main

import (
	"context"
	"log/slog"
	"os"

	"storyhub/config"
	"storyhub/internal/delivery"
	"storyhub/internal/delivery/http"
	httpmiddleware "storyhub/internal/delivery/http/middleware"
	"storyhub/internal/delivery/http/router/handler"
	"storyhub/internal/delivery/middleware"
	"storyhub/internal/infra/auth"
	logs "storyhub/internal/infra/log"
	"storyhub/internal/infra/media"
	"storyhub/internal/infra/metrics"
	"storyhub/internal/infra/persistence/postgres"
	"storyhub/internal/infra/pubsub"
	"storyhub/internal/infra/qrcode"
	"storyhub/internal/usecase/impl"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	// Spans stay no-ops until a tracer provider is installed; incoming trace context still flows through.
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))

	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		metrics.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewBlogRepository,
			postgres.NewCommentRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			media.New,
			qrcode.NewQRCodeService,
		),
		pubsub.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewProfileService,
			impl.NewBlogService,
			impl.NewCommentService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			httpmiddleware.NewAuthMiddleware,
			httpmiddleware.NewErrorMiddleware,
			middleware.NewMetricsMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewBlogHandler,
			handler.NewCommentHandler,
			handler.NewMediaHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
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

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
