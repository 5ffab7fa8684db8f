package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRequestCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDemoMetrics(reg)

	m.ObserveRequest("/api/execute", "200")
	m.ObserveRequest("/api/execute", "200")
	m.ObserveRequest("/api/execute", "400")

	got := testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/execute", "200"))
	if got != 2 {
		t.Fatalf("expected 2 requests with status 200, got %v", got)
	}
	got = testutil.ToFloat64(m.requestsTotal.WithLabelValues("/api/execute", "400"))
	if got != 1 {
		t.Fatalf("expected 1 request with status 400, got %v", got)
	}
}

func TestObserveRuleMatchCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDemoMetrics(reg)

	m.ObserveRuleMatch("scheduling")
	m.ObserveRuleMatch("scheduling")
	m.ObserveRuleMatch("support")

	got := testutil.ToFloat64(m.ruleMatches.WithLabelValues("scheduling"))
	if got != 2 {
		t.Fatalf("expected 2 scheduling matches, got %v", got)
	}
}

func TestObserveRelayLatencyRecords(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewDemoMetrics(reg)

	m.ObserveRelayLatency("n8n", 150*time.Millisecond)

	count := testutil.CollectAndCount(m.relayLatency)
	if count != 1 {
		t.Fatalf("expected 1 histogram series, got %d", count)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *DemoMetrics

	m.ObserveRequest("/api/execute", "200")
	m.ObserveRuleMatch("support")
	m.ObserveRelayLatency("openai", time.Second)
}
