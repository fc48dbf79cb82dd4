package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/logger"
)

var skipPaths = []string{"/health"}

// Logger logs one line per request: method, path, status, latency, IP.
// Failures log at WARN so degraded pages stay visible in the output.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		for _, skip := range skipPaths {
			if path == skip {
				c.Next()
				return
			}
		}

		start := time.Now()
		if query := c.Request.URL.RawQuery; query != "" {
			path = path + "?" + query
		}

		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)

		if status >= 400 {
			logger.Warn("%s %s -> %d (%v) ip=%s", c.Request.Method, path, status, latency, c.ClientIP())
			return
		}
		logger.Info("%s %s -> %d (%v)", c.Request.Method, path, status, latency)
	}
}
