package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/harshgajera101/SmartSanstha-sub001/internal/logging"
)

// requestLogger logs one structured line per request.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		fields := logging.Fields{
			"method":      c.Request.Method,
			"path":        c.FullPath(),
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if c.Writer.Status() >= 500 {
			logging.Warn("request served with error", fields)
			return
		}
		logging.Info("request served", fields)
	}
}
