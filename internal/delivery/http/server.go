package http

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"storyhub/config"
	"storyhub/internal/delivery"
	httpmiddleware "storyhub/internal/delivery/http/middleware"
	"storyhub/internal/delivery/http/router"
	"storyhub/internal/delivery/http/validator"
	"storyhub/internal/delivery/middleware"
	"storyhub/internal/domain/lifecycle"
	"storyhub/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type httpServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc                fx.Lifecycle
	Cfg               *config.Config
	Logger            *slog.Logger
	ErrorMiddleware   *httpmiddleware.ErrorMiddleware
	MetricsMiddleware *middleware.MetricsMiddleware
	RouterParams      router.RouterParams
}

func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer := NewEcho(params.Cfg, params.Logger, params.ErrorMiddleware, params.MetricsMiddleware, params.RouterParams)

	srv := &httpServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

// NewEcho builds the fully wired echo instance without starting it.
func NewEcho(
	cfg *config.Config,
	logger *slog.Logger,
	errorMiddleware *httpmiddleware.ErrorMiddleware,
	metricsMiddleware *middleware.MetricsMiddleware,
	routerParams router.RouterParams,
) *echo.Echo {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.HidePort = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	requestIDMiddleware := middleware.NewRequestIDMiddleware(logger)
	echoServer.Use(requestIDMiddleware.Process)

	// 3. Tracing, so the request logger carries the trace id
	echoServer.Use(middleware.NewTracingMiddleware().Handle)

	// 4. Logger middleware
	loggerMiddleware := middleware.NewLoggerMiddleware(logger, cfg)
	echoServer.Use(loggerMiddleware.Handle)

	// 5. Metrics
	if metricsMiddleware != nil {
		echoServer.Use(metricsMiddleware.Handle)
	}

	// 6. CORS middleware, credentials are needed for the session cookie
	echoServer.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     cfg.HTTP.CORS.AllowOrigins,
		AllowCredentials: true,
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderXRequestID,
			"traceparent",
		},
	}))

	// 7. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	// Set up validator
	echoServer.Validator = validator.New()

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(echoServer)

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
