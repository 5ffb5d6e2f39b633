package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storyhub/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds client supplied ids before they reach logs and events.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id and a logger carrying it.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process reuses the caller's X-Request-Id when it is usable, otherwise generates one,
// and echoes it on the response.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := strings.TrimSpace(c.Request().Header.Get(deliverycontext.HeaderXRequestID))
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(c.Request().Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(slog.String("request_id", requestID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
