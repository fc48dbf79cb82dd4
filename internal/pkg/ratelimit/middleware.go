package ratelimit

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/minjaekim/sportsmate-web/internal/pkg/response"
)

// Middleware rejects callers that exhausted their window with a 429.
// Keys are client IPs; the gateway fronts exactly one UI so this is only
// a safety valve, not a fairness scheme.
func Middleware(limiter *RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.ClientIP()

		if !limiter.Allow(key) {
			retryAfter := time.Until(limiter.ResetTime(key))
			if retryAfter < 0 {
				retryAfter = 0
			}
			c.Header("Retry-After", fmt.Sprintf("%.0f", retryAfter.Seconds()))
			response.TooManyRequests(c, "Rate limit exceeded. Try again later.", "RATE_LIMITED")
			c.Abort()
			return
		}

		c.Next()
	}
}
