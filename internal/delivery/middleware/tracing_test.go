package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

func TestTracingMiddleware_PropagatesIncomingTraceContext(t *testing.T) {
	previous := otel.GetTextMapPropagator()
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() { otel.SetTextMapPropagator(previous) })

	const traceID = "4bf92f3577b34da6a3ce929d0e0e4736"

	var seen trace.SpanContext
	e := echo.New()
	e.Use(NewTracingMiddleware().Handle)
	e.GET("/health", func(c echo.Context) error {
		seen = trace.SpanContextFromContext(c.Request().Context())

		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("traceparent", "00-"+traceID+"-00f067aa0ba902b7-01")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, traceID, seen.TraceID().String())
}

func TestTracingMiddleware_WithoutTraceContext(t *testing.T) {
	called := false
	e := echo.New()
	e.Use(NewTracingMiddleware().Handle)
	e.GET("/health", func(c echo.Context) error {
		called = true

		return echo.NewHTTPError(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusTeapot, rec.Code)
}
