package middleware

import (
	"time"

	coreport "github.com/whitecat-hosting/whitecat/internal/domain/port/core"
	"github.com/gin-gonic/gin"
)

// Logger logs each request with its outcome. Server errors are raised to the
// error level so they stand out from regular traffic; liveness probes are
// skipped entirely.
func Logger(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method
		ip := c.ClientIP()

		c.Next()

		if path == "/health" {
			return
		}

		status := c.Writer.Status()
		fields := map[string]any{
			"method":     method,
			"path":       path,
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         ip,
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		switch {
		case status >= 500:
			logger.Error("Request failed", fields)
		case status >= 400:
			logger.Warn("Request rejected", fields)
		default:
			logger.Info("Request processed", fields)
		}
	}
}
