package middlewares

import (
	"gin-tasktracker/constants"
	"gin-tasktracker/infra"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger tags each request with an ID, logs it once it completes,
// and records HTTP metrics labelled by route template.
func RequestLogger(log logrus.FieldLogger, metrics *infra.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		requestID := ctx.GetHeader(constants.HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		ctx.Set(constants.ContextRequestIDKey, requestID)
		ctx.Header(constants.HeaderRequestID, requestID)

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := ctx.Writer.Status()
		latency := time.Since(start)
		metrics.ObserveRequest(ctx.Request.Method, route, strconv.Itoa(status), latency.Seconds())

		entry := log.WithFields(logrus.Fields{
			constants.ContextRequestIDKey: requestID,
			"method":                      ctx.Request.Method,
			"path":                        ctx.Request.URL.Path,
			"status":                      status,
			"latency_ms":                  latency.Milliseconds(),
			"client_ip":                   ctx.ClientIP(),
		})
		switch {
		case status >= 500:
			entry.Error("Request failed")
		case status >= 400:
			entry.Warn("Request rejected")
		default:
			entry.Info("Request handled")
		}
	}
}
