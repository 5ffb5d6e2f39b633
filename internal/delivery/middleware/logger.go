package middleware

import (
	"log/slog"
	"time"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware writes one access log line per request when debug is on.
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	if !m.debug {
		return next
	}

	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	ctx := req.Context()

	// The status is not written yet when the handler returned an error.
	status := c.Response().Status
	if err != nil {
		status = statusFromError(err, status)
	}

	route := c.Path()
	if route == "" {
		route = "unmatched"
	}

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if user, ok := deliverycontext.GetUser(c); ok {
		fields = append(fields, slog.String("user_id", user.ID.String()))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	level := slog.LevelInfo
	switch {
	case status >= 500:
		level = slog.LevelError
	case status >= 400:
		level = slog.LevelWarn
	}

	// Request-scoped logger already carries request_id and trace_id.
	deliverycontext.GetLoggerOrDefault(ctx, m.logger).LogAttrs(ctx, level, "HTTP Request", fields...)
}
