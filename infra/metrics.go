package infra

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors. A nil *Metrics is valid and
// records nothing, which keeps tests free of registry plumbing.
type Metrics struct {
	registry *prometheus.Registry

	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	LoginsTotal         *prometheus.CounterVec
	ResolutionsTotal    *prometheus.CounterVec
	RevocationsTotal    prometheus.Counter
	RevocationCacheHits prometheus.Counter
	PrunedTokensTotal   prometheus.Counter
}

func NewMetrics(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasktracker_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "tasktracker_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		LoginsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasktracker_auth_logins_total",
				Help: "Login attempts by outcome",
			},
			[]string{"outcome"},
		),
		ResolutionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tasktracker_auth_resolutions_total",
				Help: "Bearer token resolutions by outcome",
			},
			[]string{"outcome"},
		),
		RevocationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasktracker_auth_revocations_total",
			Help: "Tokens written to the revocation ledger",
		}),
		RevocationCacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasktracker_auth_revocation_cache_hits_total",
			Help: "Revocation checks answered from the in-process cache",
		}),
		PrunedTokensTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "tasktracker_auth_pruned_tokens_total",
			Help: "Expired revocation entries deleted by the pruner",
		}),
	}

	registry.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.LoginsTotal,
		m.ResolutionsTotal,
		m.RevocationsTotal,
		m.RevocationCacheHits,
		m.PrunedTokensTotal,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *Metrics) ObserveRequest(method, path, status string, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) ObserveLogin(outcome string) {
	if m == nil {
		return
	}
	m.LoginsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveResolution(outcome string) {
	if m == nil {
		return
	}
	m.ResolutionsTotal.WithLabelValues(outcome).Inc()
}

func (m *Metrics) ObserveRevocation() {
	if m == nil {
		return
	}
	m.RevocationsTotal.Inc()
}

func (m *Metrics) ObserveRevocationCacheHit() {
	if m == nil {
		return
	}
	m.RevocationCacheHits.Inc()
}

func (m *Metrics) ObservePruned(n int64) {
	if m == nil {
		return
	}
	m.PrunedTokensTotal.Add(float64(n))
}
