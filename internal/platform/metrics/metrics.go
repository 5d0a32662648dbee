package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus metrics of the mock registration service.
type Metrics struct {
	Registrations     *prometheus.CounterVec
	Removals          *prometheus.CounterVec
	RegisteredCitizen prometheus.Gauge
}

// New creates the metrics and registers them on reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wcg_registrations_total",
			Help: "Registration attempts, labeled by outcome code",
		}, []string{"outcome"}),
		Removals: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "wcg_citizen_removals_total",
			Help: "Citizen removal requests, labeled by whether a record existed",
		}, []string{"found"}),
		RegisteredCitizen: factory.NewGauge(prometheus.GaugeOpts{
			Name: "wcg_registered_citizens",
			Help: "Current number of registered citizens",
		}),
	}
}

// IncrementRegistrations counts one registration attempt with the given outcome.
func (m *Metrics) IncrementRegistrations(outcome string) {
	m.Registrations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementRemovals(found bool) {
	label := "false"
	if found {
		label = "true"
	}
	m.Removals.WithLabelValues(label).Inc()
}

func (m *Metrics) SetRegisteredCitizens(count int) {
	m.RegisteredCitizen.Set(float64(count))
}
