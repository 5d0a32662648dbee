package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncrementRegistrations("success")
	m.IncrementRegistrations("success")
	m.IncrementRegistrations("already_registered")
	m.IncrementRemovals(true)
	m.IncrementRemovals(false)
	m.SetRegisteredCitizens(4)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Registrations.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Registrations.WithLabelValues("already_registered")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Removals.WithLabelValues("true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Removals.WithLabelValues("false")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.RegisteredCitizen))

	count, err := testutil.GatherAndCount(reg, "wcg_registrations_total")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestNew_SeparateRegistries(t *testing.T) {
	assert.NotPanics(t, func() {
		New(prometheus.NewRegistry())
		New(prometheus.NewRegistry())
	})
}
