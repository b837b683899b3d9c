package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics exposes counters/histograms for the lead-capture and audit flows.
type Metrics struct {
	leadsTotal       *prometheus.CounterVec
	auditsTotal      *prometheus.CounterVec
	inferenceLatency prometheus.Histogram
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "leads",
			Name:      "captures_total",
			Help:      "Total lead capture attempts",
		}, []string{"category", "outcome"}),
		auditsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "agency",
			Subsystem: "audit",
			Name:      "runs_total",
			Help:      "Total website audit runs",
		}, []string{"outcome"}),
		inferenceLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "agency",
			Subsystem: "audit",
			Name:      "inference_latency_seconds",
			Help:      "Latency of inference-service round trips",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.leadsTotal, m.auditsTotal, m.inferenceLatency)
	return m
}

func (m *Metrics) ObserveLead(category, outcome string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(category, outcome).Inc()
}

func (m *Metrics) ObserveAudit(outcome string) {
	if m == nil {
		return
	}
	m.auditsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveInferenceLatency(seconds float64) {
	if m == nil {
		return
	}
	m.inferenceLatency.Observe(seconds)
}
