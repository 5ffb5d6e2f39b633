package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"storyhub/config"
	deliverycontext "storyhub/internal/delivery/context"
	"storyhub/internal/delivery/http/response"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	logger *slog.Logger
	debug  bool
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger, cfg *config.Config) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
		debug:  cfg.Env.Debug,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		details := appErr.Details()
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed",
				slog.Any("error", err),
				slog.String("path", c.Request().URL.Path),
				slog.String("method", c.Request().Method),
			)
			details = m.internalDetails(err)
		}

		_ = response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, "")

		return
	}

	// Default to internal error, log the error but return a generic message
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.Error(c, http.StatusInternalServerError, domainerrors.ErrInternalError.ErrorCode(),
		domainerrors.ErrInternalError.Message(), m.internalDetails(err))
}

// internalDetails exposes the error chain only when running in debug mode.
func (m *ErrorMiddleware) internalDetails(err error) string {
	if !m.debug {
		return ""
	}

	return fmt.Sprintf("%v", err)
}
