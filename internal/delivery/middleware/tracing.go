package middleware

import (
	"log/slog"

	deliverycontext "storyhub/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "storyhub/http"

// TracingMiddleware starts a server span per request using the global OpenTelemetry provider.
// Without a configured provider the spans are no-ops but incoming trace context still propagates.
type TracingMiddleware struct {
	tracer trace.Tracer
}

// NewTracingMiddleware creates a new tracing middleware
func NewTracingMiddleware() *TracingMiddleware {
	return &TracingMiddleware{tracer: otel.Tracer(tracerName)}
}

// Handle wraps the request in a span named after the route template.
func (m *TracingMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		ctx := otel.GetTextMapPropagator().Extract(req.Context(), propagation.HeaderCarrier(req.Header))

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := m.tracer.Start(ctx, req.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.request.method", req.Method),
				attribute.String("http.route", route),
				attribute.String("storyhub.request_id", deliverycontext.GetRequestID(c)),
			),
		)
		defer span.End()

		if spanCtx := span.SpanContext(); spanCtx.HasTraceID() {
			logger := deliverycontext.GetLoggerOrDefault(ctx, slog.Default()).
				With(slog.String("trace_id", spanCtx.TraceID().String()))
			ctx = deliverycontext.WithLogger(ctx, logger)
		}
		c.SetRequest(req.WithContext(ctx))

		err := next(c)

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err, status)
			span.RecordError(err)
		}
		span.SetAttributes(attribute.Int("http.response.status_code", status))
		if status >= 500 {
			span.SetStatus(codes.Error, "server error")
		}

		return err
	}
}
