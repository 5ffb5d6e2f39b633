package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"storyhub/config"
	domainerrors "storyhub/internal/domain/errors"
	"storyhub/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsMiddleware_Handle(t *testing.T) {
	metrics := NewMetricsMiddleware(&config.Config{}, prometheus.NewRegistry())

	e := echo.New()
	e.Use(metrics.Handle)
	e.GET("/blog/:id", func(c echo.Context) error {
		if c.Param("id") == "missing" {
			return errors.WithStack(domainerrors.ErrBlogNotFound)
		}

		return c.NoContent(http.StatusOK)
	})

	for _, path := range []string{"/blog/1", "/blog/2", "/blog/missing"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.InDelta(t, 2, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("GET", "/blog/:id", "200")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.requestsTotal.WithLabelValues("GET", "/blog/:id", "404")), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(metrics.inFlight), 0)
}

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		fallback int
		want     int
	}{
		{name: "app error", err: errors.WithStack(domainerrors.ErrBlogOwnershipViolation), fallback: 200, want: 403},
		{name: "echo error", err: echo.NewHTTPError(http.StatusMethodNotAllowed), fallback: 200, want: 405},
		{name: "committed error status", err: errors.New("boom"), fallback: 502, want: 502},
		{name: "plain error", err: errors.New("boom"), fallback: 200, want: 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err, tt.fallback))
		})
	}
}

func TestNewMetricsMiddleware_Namespace(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewMetricsMiddleware(&config.Config{Metrics: &config.MetricsConfig{Namespace: "blogs"}}, registry).
		requestsTotal.WithLabelValues("GET", "/", "200").Inc()

	families, err := registry.Gather()
	assert.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "blogs_http_requests_total")
}
