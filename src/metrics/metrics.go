package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts license issuance outcomes.
type Metrics struct {
	Issued prometheus.Counter
	Denied *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Issued: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "masqr",
			Name:      "licenses_issued_total",
			Help:      "Number of license grants issued.",
		}),
		Denied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "masqr",
			Name:      "license_denials_total",
			Help:      "Number of refused license requests, by reason.",
		}, []string{"reason"}),
	}
	reg.MustRegister(m.Issued, m.Denied)
	return m
}

func (m *Metrics) IncIssued() {
	m.Issued.Inc()
}

func (m *Metrics) IncDenied(reason string) {
	m.Denied.WithLabelValues(reason).Inc()
}
