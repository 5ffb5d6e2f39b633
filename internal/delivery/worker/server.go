package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storyhub/config"
	"storyhub/internal/delivery"
	"storyhub/internal/delivery/middleware"
	"storyhub/internal/delivery/worker/handler"
	"storyhub/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc              fx.Lifecycle
	Cfg             *config.Config
	Logger          *slog.Logger
	ActivityHandler *handler.ActivityHandler
	Gatherer        prometheus.Gatherer
}

// NewServer creates a new worker HTTP server
func NewServer(params ServerParams) (delivery.Delivery, error) {
	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: NewEcho(params.Cfg, params.Logger, params.ActivityHandler, params.Gatherer),
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the worker router: health, metrics and the push endpoint.
func NewEcho(cfg *config.Config, logger *slog.Logger, activityHandler *handler.ActivityHandler, gatherer prometheus.Gatherer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// 1. Recover middleware first (to catch panics early)
	e.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	e.Use(requestIDMiddleware.Process)

	// 3. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	e.Use(loggerMiddleware.Handle)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	if cfg.Metrics == nil || cfg.Metrics.Enabled {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	// Pub/Sub push endpoint
	e.POST("/push", activityHandler.HandlePush)

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting Worker HTTP server", slog.String("hostPort", hostPort))
	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

// stop gracefully shuts down the worker server
func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down Worker HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
