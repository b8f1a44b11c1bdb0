package middleware

import (
	"net/http"
	"time"

	coreport "github.com/amirhossein-jamali/document-lock/internal/domain/port/core"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Logger middleware logs every request once it has been served.
// Server errors log at Error, rejected input at Warn, lock conflicts and
// successes at Info. Probe endpoints log at Debug.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		route := c.FullPath()
		fields := map[string]any{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"route":      route,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.ClientIP(),
			"request_id": c.GetString(RequestIDKey),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			fields["trace_id"] = sc.TraceID().String()
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case route == "/health" || route == "/metrics":
			logger.Debug("Request processed", fields)
		case status >= http.StatusInternalServerError:
			logger.Error("Request failed", fields)
		case status >= http.StatusBadRequest && status != http.StatusConflict:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
