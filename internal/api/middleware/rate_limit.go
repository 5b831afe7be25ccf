package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	gocache "github.com/patrickmn/go-cache"
)

const rateLimitWindow = 15 * time.Minute

// RateLimit applies a fixed window per client IP. The window starts at the
// first request and resets when the cache entry expires.
func RateLimit(max int) gin.HandlerFunc {
	counters := gocache.New(rateLimitWindow, 2*rateLimitWindow)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		if _, found := counters.Get(ip); !found {
			counters.Set(ip, int64(0), rateLimitWindow)
		}
		n, err := counters.IncrementInt64(ip, 1)
		if err != nil {
			// entry expired between Get and Increment; start a fresh window
			counters.Set(ip, int64(1), rateLimitWindow)
			n = 1
		}

		if n > int64(max) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"success":    false,
				"message":    "Too many requests from this IP, please try again later.",
				"retryAfter": int(rateLimitWindow.Seconds()),
			})
			return
		}

		c.Next()
	}
}
