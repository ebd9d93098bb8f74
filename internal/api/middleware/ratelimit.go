package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// maxClients caps the limiter map. When full, the map is dropped wholesale
// and every client starts over with a fresh bucket; cheaper than tracking
// recency and good enough at this scale.
const maxClients = 10000

// RateLimit applies a per-client token bucket keyed by client IP.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)
	return func(c *gin.Context) {
		mu.Lock()
		lim, ok := limiters[c.ClientIP()]
		if !ok {
			if len(limiters) >= maxClients {
				limiters = make(map[string]*rate.Limiter)
			}
			lim = rate.NewLimiter(rate.Limit(rps), burst)
			limiters[c.ClientIP()] = lim
		}
		mu.Unlock()

		if !lim.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}
		c.Next()
	}
}
