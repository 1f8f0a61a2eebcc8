package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"realestate-backend/pkg/logger"
)

// Logger writes one access-log line per request. The health probe is
// skipped so load-balancer polling does not drown the log.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		if path == "/api/health" {
			return
		}

		fields := map[string]interface{}{
			"requestId": c.GetString("request_id"),
			"method":    c.Request.Method,
			"path":      path,
			"status":    c.Writer.Status(),
			"latencyMs": time.Since(start).Milliseconds(),
			"clientIp":  c.ClientIP(),
		}
		if query != "" {
			fields["query"] = query
		}

		logger.Info("request completed", fields)
	}
}
