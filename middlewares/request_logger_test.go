package middlewares

import (
	"gin-tasktracker/constants"
	"gin-tasktracker/infra"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoggedRouter(log logrus.FieldLogger, metrics *infra.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(RequestLogger(log, metrics))
	r.GET("/tasks/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(constants.ContextRequestIDKey))
	})
	return r
}

func TestRequestLogger_AssignsRequestID(t *testing.T) {
	log, hook := test.NewNullLogger()
	r := newLoggedRouter(log, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tasks/7", nil)
	r.ServeHTTP(w, req)

	requestID := w.Header().Get(constants.HeaderRequestID)
	_, err := uuid.Parse(requestID)
	require.NoError(t, err)
	assert.Equal(t, requestID, w.Body.String())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.InfoLevel, entry.Level)
	assert.Equal(t, requestID, entry.Data[constants.ContextRequestIDKey])
	assert.Equal(t, http.StatusOK, entry.Data["status"])
}

func TestRequestLogger_HonorsIncomingRequestID(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newLoggedRouter(log, nil)
	incoming := uuid.NewString()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tasks/7", nil)
	req.Header.Set(constants.HeaderRequestID, incoming)
	r.ServeHTTP(w, req)

	assert.Equal(t, incoming, w.Header().Get(constants.HeaderRequestID))
}

func TestRequestLogger_IgnoresMalformedRequestID(t *testing.T) {
	log, _ := test.NewNullLogger()
	r := newLoggedRouter(log, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/tasks/7", nil)
	req.Header.Set(constants.HeaderRequestID, "not a uuid\n")
	r.ServeHTTP(w, req)

	assert.NotEqual(t, "not a uuid\n", w.Header().Get(constants.HeaderRequestID))
}

func TestRequestLogger_RecordsMetricsByRoute(t *testing.T) {
	log, hook := test.NewNullLogger()
	metrics := infra.NewMetrics(prometheus.NewRegistry())
	r := newLoggedRouter(log, metrics)

	for _, path := range []string{"/tasks/1", "/tasks/2", "/missing"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/tasks/:id", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")))
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
