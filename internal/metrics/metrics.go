package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors of the daxie service.
type Metrics struct {
	// Conversions by operation and outcome
	Conversions *prometheus.CounterVec

	// Request latency by route pattern
	RequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Conversions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "daxie_conversions_total",
			Help: "Total amount conversions by operation and outcome",
		}, []string{"op", "outcome"}), // outcome: "ok" or an error code

		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "daxie_request_duration_seconds",
			Help:    "Duration of HTTP requests by route",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
		}, []string{"route"}),
	}
}

// IncConversion records the outcome of a single conversion.
func (m *Metrics) IncConversion(op, outcome string) {
	if m != nil {
		m.Conversions.WithLabelValues(op, outcome).Inc()
	}
}

// ObserveRequest records the duration of a request served by route.
func (m *Metrics) ObserveRequest(route string, d time.Duration) {
	if m != nil {
		m.RequestDuration.WithLabelValues(route).Observe(d.Seconds())
	}
}
