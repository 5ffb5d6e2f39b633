// Package metrics owns the Prometheus registry shared by the HTTP and worker deliveries.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/fx"
)

// NewRegistry creates a registry with the Go runtime and process collectors attached.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return registry
}

// Module provides the registry as both Registerer and Gatherer.
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewRegistry,
		func(registry *prometheus.Registry) prometheus.Registerer { return registry },
		func(registry *prometheus.Registry) prometheus.Gatherer { return registry },
	),
)
