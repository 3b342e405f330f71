package observability

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
)

func TestCollectorRecordsCacheActivity(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.CacheMiss()
	c.CacheHit()
	c.CacheHit()
	c.CacheSize(7)

	if got := testutil.ToFloat64(c.CacheHits); got != 2 {
		t.Fatalf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.CacheMisses); got != 1 {
		t.Fatalf("cache misses = %v, want 1", got)
	}
	if got := testutil.ToFloat64(c.CacheEntries); got != 7 {
		t.Fatalf("cache entries = %v, want 7", got)
	}
}

func TestCollectorObservesRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}

	c.ObserveRoute(2*time.Millisecond, 11, 118.5, true)
	c.ObserveRoute(time.Millisecond, 0, 0, false)
	c.ObserveRoute(time.Millisecond, 0, 0, false)

	if got := testutil.ToFloat64(c.NoRoute); got != 2 {
		t.Fatalf("no route = %v, want 2", got)
	}
	if n := histogramSampleCount(t, reg, "indoornav_route_duration_seconds", map[string]string{"found": "false"}); n != 2 {
		t.Fatalf("duration{found=false} count = %d, want 2", n)
	}
	if n := histogramSampleCount(t, reg, "indoornav_route_steps", nil); n != 1 {
		t.Fatalf("steps count = %d, want 1", n)
	}
	if n := histogramSampleCount(t, reg, "indoornav_route_length_units", nil); n != 1 {
		t.Fatalf("length count = %d, want 1", n)
	}
}

func TestCollectorReRegistrationReusesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("first NewCollector: %v", err)
	}
	second, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("second NewCollector: %v", err)
	}
	first.CacheHit()
	second.CacheHit()
	if got := testutil.ToFloat64(first.CacheHits); got != 2 {
		t.Fatalf("shared counter = %v, want 2", got)
	}
}

func TestNilCollectorIsSafe(t *testing.T) {
	var c *Collector
	c.CacheHit()
	c.CacheMiss()
	c.CacheSize(3)
	c.ObserveRoute(time.Second, 1, 1, true)
}

func TestMetricsHandlerExposesRouteMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	if err != nil {
		t.Fatalf("NewCollector: %v", err)
	}
	c.CacheSize(4)
	c.ObserveRoute(time.Millisecond, 3, 30, true)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rr := httptest.NewRecorder()
	c.Handler().ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	body := rr.Body.String()
	for _, want := range []string{
		"indoornav_path_cache_entries 4",
		`indoornav_route_duration_seconds_count{found="true"} 1`,
		"indoornav_route_steps_count 1",
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("metrics output missing %q", want)
		}
	}
}

func histogramSampleCount(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) uint64 {
	t.Helper()
	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	for _, mf := range mfs {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			if labelsMatch(m, labels) {
				return m.GetHistogram().GetSampleCount()
			}
		}
	}
	t.Fatalf("histogram %s with labels %v not found", name, labels)
	return 0
}

func labelsMatch(m *dto.Metric, want map[string]string) bool {
	got := make(map[string]string, len(m.GetLabel()))
	for _, lp := range m.GetLabel() {
		got[lp.GetName()] = lp.GetValue()
	}
	for k, v := range want {
		if got[k] != v {
			return false
		}
	}
	return true
}
