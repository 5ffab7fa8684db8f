package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// DemoMetrics tracks demo API activity. All methods are nil-safe so
// callers can skip wiring metrics in tests.
type DemoMetrics struct {
	requestsTotal *prometheus.CounterVec
	ruleMatches   *prometheus.CounterVec
	relayLatency  *prometheus.HistogramVec
}

// NewDemoMetrics registers demo metrics on the given registerer.
// Passing nil uses prometheus.DefaultRegisterer.
func NewDemoMetrics(reg prometheus.Registerer) *DemoMetrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &DemoMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "automari",
				Subsystem: "demo",
				Name:      "requests_total",
				Help:      "Demo API requests by endpoint and status.",
			},
			[]string{"endpoint", "status"},
		),
		ruleMatches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "automari",
				Subsystem: "demo",
				Name:      "rule_matches_total",
				Help:      "Keyword rule matches by category.",
			},
			[]string{"category"},
		),
		relayLatency: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "automari",
				Subsystem: "demo",
				Name:      "relay_latency_seconds",
				Help:      "Latency of calls to external collaborators.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"collaborator"},
		),
	}

	reg.MustRegister(m.requestsTotal, m.ruleMatches, m.relayLatency)
	return m
}

// ObserveRequest counts one request against an endpoint with its status.
func (m *DemoMetrics) ObserveRequest(endpoint, status string) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(endpoint, status).Inc()
}

// ObserveRuleMatch counts one keyword rule match for a category.
func (m *DemoMetrics) ObserveRuleMatch(category string) {
	if m == nil {
		return
	}
	m.ruleMatches.WithLabelValues(category).Inc()
}

// ObserveRelayLatency records the duration of one external call.
func (m *DemoMetrics) ObserveRelayLatency(collaborator string, d time.Duration) {
	if m == nil {
		return
	}
	m.relayLatency.WithLabelValues(collaborator).Observe(d.Seconds())
}
