package notify

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "cmk_notify"

const (
	LookupResultHit  = "hit"
	LookupResultMiss = "miss"
)

type RegistryMetrics struct {
	Registerer           prometheus.Registerer
	schemas              prometheus.Gauge
	lookups              *prometheus.CounterVec
	registrationFailures prometheus.Counter
}

// NewRegistryMetrics creates the metrics of a SchemaRegistry. A nil Registerer leaves them unregistered.
func NewRegistryMetrics(r prometheus.Registerer) *RegistryMetrics {
	return &RegistryMetrics{
		Registerer: r,
		schemas: promauto.With(r).NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "integration_schemas",
			Help:      "Number of registered integration schemas.",
		}),
		lookups: promauto.With(r).NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_lookups_total",
			Help:      "Number of integration schema lookups by result.",
		}, []string{"result"}),
		registrationFailures: promauto.With(r).NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "schema_registration_failures_total",
			Help:      "Number of integration schemas rejected at registration.",
		}),
	}
}
