package infra

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveRequest("GET", "/health", "200", 0.01)
		m.ObserveLogin("success")
		m.ObserveResolution("revoked")
		m.ObserveRevocation()
		m.ObserveRevocationCacheHit()
		m.ObservePruned(3)
	})
}

func TestMetrics_CountersAndHandler(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.ObserveLogin("success")
	m.ObserveLogin("success")
	m.ObserveLogin("invalid_credentials")
	m.ObserveResolution("ok")
	m.ObserveRevocation()
	m.ObservePruned(5)
	m.ObserveRequest("GET", "/auth/profile", "200", 0.002)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.LoginsTotal.WithLabelValues("invalid_credentials")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.RevocationsTotal))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.PrunedTokensTotal))

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "tasktracker_auth_logins_total")
	assert.Contains(t, rec.Body.String(), `tasktracker_http_requests_total{method="GET",path="/auth/profile",status="200"} 1`)
}
