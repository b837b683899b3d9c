package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())
	m.ObserveLead("roi_email", "captured")
	m.ObserveAudit("fallback")
	m.ObserveInferenceLatency(0.5)
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveLead("callback", "rejected")
	m.ObserveAudit("failed")
	m.ObserveInferenceLatency(0.1)
}
