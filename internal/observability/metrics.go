// Package observability wires Prometheus metrics and OpenTelemetry tracing
// for the indoornav binary.
package observability

import (
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the routing metrics. It satisfies navigator.Recorder
// and pathcache.Recorder.
type Collector struct {
	gatherer prometheus.Gatherer

	CacheHits     prometheus.Counter
	CacheMisses   prometheus.Counter
	CacheEntries  prometheus.Gauge
	RouteDuration *prometheus.HistogramVec
	RouteSteps    prometheus.Histogram
	RouteLength   prometheus.Histogram
	NoRoute       prometheus.Counter
}

// NewCollector registers the routing metrics against reg, defaulting to the
// global Prometheus registry when nil. Registering twice against the same
// registry returns collectors bound to the existing metrics.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	hits, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "indoornav_path_cache_hits_total",
		Help: "Route requests answered from the path cache.",
	}), "indoornav_path_cache_hits_total")
	if err != nil {
		return nil, err
	}
	misses, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "indoornav_path_cache_misses_total",
		Help: "Route requests that ran a search.",
	}), "indoornav_path_cache_misses_total")
	if err != nil {
		return nil, err
	}
	entries, err := registerGauge(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "indoornav_path_cache_entries",
		Help: "Routes currently held by the path cache.",
	}), "indoornav_path_cache_entries")
	if err != nil {
		return nil, err
	}
	duration, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "indoornav_route_duration_seconds",
		Help:    "Time to answer a route request, labeled by whether a route was found.",
		Buckets: []float64{0.00005, 0.0001, 0.00025, 0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1},
	}, []string{"found"}), "indoornav_route_duration_seconds")
	if err != nil {
		return nil, err
	}
	steps, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "indoornav_route_steps",
		Help:    "Cell moves along found routes.",
		Buckets: prometheus.ExponentialBuckets(1, 2, 10),
	}), "indoornav_route_steps")
	if err != nil {
		return nil, err
	}
	length, err := registerHistogram(reg, prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "indoornav_route_length_units",
		Help:    "Smoothed length of found routes in rendering units.",
		Buckets: prometheus.ExponentialBuckets(10, 2, 10),
	}), "indoornav_route_length_units")
	if err != nil {
		return nil, err
	}
	noRoute, err := registerCounter(reg, prometheus.NewCounter(prometheus.CounterOpts{
		Name: "indoornav_no_route_total",
		Help: "Route requests whose endpoints are not connected.",
	}), "indoornav_no_route_total")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:      gatherer,
		CacheHits:     hits,
		CacheMisses:   misses,
		CacheEntries:  entries,
		RouteDuration: duration,
		RouteSteps:    steps,
		RouteLength:   length,
		NoRoute:       noRoute,
	}, nil
}

// CacheHit counts a cache hit.
func (c *Collector) CacheHit() {
	if c != nil && c.CacheHits != nil {
		c.CacheHits.Inc()
	}
}

// CacheMiss counts a cache miss.
func (c *Collector) CacheMiss() {
	if c != nil && c.CacheMisses != nil {
		c.CacheMisses.Inc()
	}
}

// CacheSize sets the cache entry gauge.
func (c *Collector) CacheSize(n int) {
	if c != nil && c.CacheEntries != nil {
		c.CacheEntries.Set(float64(n))
	}
}

// ObserveRoute records one route request.
func (c *Collector) ObserveRoute(elapsed time.Duration, steps int, length float64, found bool) {
	if c == nil {
		return
	}
	label := "false"
	if found {
		label = "true"
	}
	if c.RouteDuration != nil {
		c.RouteDuration.WithLabelValues(label).Observe(elapsed.Seconds())
	}
	if !found {
		if c.NoRoute != nil {
			c.NoRoute.Inc()
		}
		return
	}
	if c.RouteSteps != nil {
		c.RouteSteps.Observe(float64(steps))
	}
	if c.RouteLength != nil {
		c.RouteLength.Observe(length)
	}
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	gatherer := c.gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

func registerCounter(reg prometheus.Registerer, counter prometheus.Counter, name string) (prometheus.Counter, error) {
	if err := reg.Register(counter); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return counter, nil
}

func registerGauge(reg prometheus.Registerer, gauge prometheus.Gauge, name string) (prometheus.Gauge, error) {
	if err := reg.Register(gauge); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Gauge); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return gauge, nil
}

func registerHistogram(reg prometheus.Registerer, h prometheus.Histogram, name string) (prometheus.Histogram, error) {
	if err := reg.Register(h); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(prometheus.Histogram); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return h, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
