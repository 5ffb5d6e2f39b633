package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewRegistry_IncludesRuntimeCollectors(t *testing.T) {
	families, err := NewRegistry().Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, family := range families {
		names = append(names, family.GetName())
	}
	assert.Contains(t, names, "go_goroutines")
}

func TestModule_SharesOneRegistry(t *testing.T) {
	var (
		registerer prometheus.Registerer
		gatherer   prometheus.Gatherer
	)

	app := fxtest.New(t, Module, fx.Populate(&registerer, &gatherer))
	app.RequireStart()
	defer app.RequireStop()

	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "shared_total", Help: "test"})
	require.NoError(t, registerer.Register(counter))
	counter.Inc()

	families, err := gatherer.Gather()
	require.NoError(t, err)

	found := false
	for _, family := range families {
		if family.GetName() == "shared_total" {
			found = true
		}
	}
	assert.True(t, found)
}
