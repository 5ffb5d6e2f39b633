package middleware

import (
	"net/http"
	"strconv"
	"time"

	"storyhub/config"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const defaultMetricsNamespace = "storyhub"

// MetricsMiddleware records Prometheus metrics for every HTTP request.
//
// Metrics collected:
//   - <namespace>_http_requests_total: counter by method, route and status
//   - <namespace>_http_request_duration_seconds: histogram by method and route
//   - <namespace>_http_requests_in_flight: gauge of requests being served
type MetricsMiddleware struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	inFlight        prometheus.Gauge
}

// NewMetricsMiddleware registers the HTTP metrics on registry.
func NewMetricsMiddleware(cfg *config.Config, registry prometheus.Registerer) *MetricsMiddleware {
	namespace := defaultMetricsNamespace
	if cfg.Metrics != nil && cfg.Metrics.Namespace != "" {
		namespace = cfg.Metrics.Namespace
	}

	factory := promauto.With(registry)

	return &MetricsMiddleware{
		requestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests processed",
		}, []string{"method", "route", "status"}),

		requestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),

		inFlight: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being served",
		}),
	}
}

// Handle measures the wrapped handler.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		m.inFlight.Inc()
		defer m.inFlight.Dec()

		start := time.Now()
		err := next(c)

		// Route templates keep label cardinality bounded.
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}

		status := c.Response().Status
		if err != nil {
			status = statusFromError(err, status)
		}

		m.requestDuration.WithLabelValues(c.Request().Method, route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request().Method, route, strconv.Itoa(status)).Inc()

		return err
	}
}

// statusFromError resolves the status the error handler will write, since the
// response has not been committed yet when a handler returns an error.
func statusFromError(err error, fallback int) int {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	if fallback >= http.StatusBadRequest {
		return fallback
	}

	return http.StatusInternalServerError
}
