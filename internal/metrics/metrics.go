// Package metrics provides Prometheus metrics for the relay.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the relay.
type Metrics struct {
	registry *prometheus.Registry

	// Cache metrics
	CacheHits    prometheus.Counter
	CacheMisses  prometheus.Counter
	CachePruned  prometheus.Counter
	CacheEntries prometheus.Gauge

	// Rate limiter metrics
	RateAdmitted prometheus.Counter
	RateRejected prometheus.Counter
	RateClients  prometheus.Gauge

	// Upstream metrics
	UpstreamRequests *prometheus.CounterVec
	UpstreamLatency  *prometheus.HistogramVec

	// HTTP metrics
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// New creates metrics under namespace on a fresh registry that also carries
// the Go runtime and process collectors.
func New(namespace string) *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		CacheHits: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_hits_total",
			Help:      "Responses served from the cache",
		}),
		CacheMisses: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_misses_total",
			Help:      "Cache lookups that required an upstream call",
		}),
		CachePruned: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_pruned_total",
			Help:      "Expired cache entries removed by the janitor",
		}),
		CacheEntries: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "cache_entries",
			Help:      "Entries currently held in the cache",
		}),
		RateAdmitted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_admitted_total",
			Help:      "Requests admitted by the rate limiter",
		}),
		RateRejected: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ratelimit_rejected_total",
			Help:      "Requests rejected by the rate limiter",
		}),
		RateClients: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "ratelimit_clients",
			Help:      "Client windows tracked by the rate limiter",
		}),
		UpstreamRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "upstream_requests_total",
			Help:      "TMDB requests by endpoint and HTTP status (0 = transport error)",
		}, []string{"endpoint", "status"}),
		UpstreamLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "upstream_request_duration_seconds",
			Help:      "TMDB request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"endpoint"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveRequest records one upstream call.
func (m *Metrics) ObserveRequest(endpoint string, status int, elapsed time.Duration) {
	m.UpstreamRequests.WithLabelValues(endpoint, strconv.Itoa(status)).Inc()
	m.UpstreamLatency.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

// ObserveHTTP records one served HTTP request.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// Cache returns a sink for cache activity.
func (m *Metrics) Cache() CacheMetrics {
	return CacheMetrics{m: m}
}

// RateLimit returns a sink for rate limiter activity.
func (m *Metrics) RateLimit() RateLimitMetrics {
	return RateLimitMetrics{m: m}
}

// CacheMetrics adapts Metrics to the cache's metrics hooks.
type CacheMetrics struct{ m *Metrics }

func (c CacheMetrics) Hit()         { c.m.CacheHits.Inc() }
func (c CacheMetrics) Miss()        { c.m.CacheMisses.Inc() }
func (c CacheMetrics) Pruned(n int) { c.m.CachePruned.Add(float64(n)) }
func (c CacheMetrics) Size(n int)   { c.m.CacheEntries.Set(float64(n)) }

// RateLimitMetrics adapts Metrics to the limiter's metrics hooks.
type RateLimitMetrics struct{ m *Metrics }

func (r RateLimitMetrics) Admitted()     { r.m.RateAdmitted.Inc() }
func (r RateLimitMetrics) Rejected()     { r.m.RateRejected.Inc() }
func (r RateLimitMetrics) Clients(n int) { r.m.RateClients.Set(float64(n)) }
