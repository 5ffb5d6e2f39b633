// Package context carries request-scoped values (request id, logger, user)
// between the delivery layer and the services it calls.
package context

import (
	"context"
	"log/slog"

	"github.com/labstack/echo/v4"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

const (
	KeyRequestID ContextKey = "request_id"
	KeyLogger    ContextKey = "logger"

	// HeaderXRequestID is the header read and echoed by the request id middleware.
	HeaderXRequestID = echo.HeaderXRequestID
)

// SetRequestID sets the request ID in echo.Context.
func SetRequestID(c echo.Context, requestID string) {
	c.Set(string(KeyRequestID), requestID)
}

// GetRequestID returns the id assigned by the request id middleware, falling back
// to the one stored on the request context.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(KeyRequestID)).(string); ok && id != "" {
		return id
	}

	return GetRequestIDFromContext(c.Request().Context())
}

// WithRequestID returns a new context with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// GetRequestIDFromContext returns the request id, or "" outside a request.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(KeyRequestID).(string)

	return id
}

// WithLogger returns a new context with the logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, KeyLogger, logger)
}

// GetLogger returns the request-scoped logger or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(KeyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when there is none.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
