package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// clientLimiters hands out one token bucket per client IP. Entries are
// never evicted; the auth endpoints see few distinct clients per process
// lifetime.
type clientLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func (l *clientLimiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(l.limit, l.burst)
		l.limiters[key] = limiter
	}
	return limiter
}

// RateLimit throttles requests per client IP, rps tokens per second with
// the given burst. Used on the login/register endpoints to slow down
// credential guessing.
func RateLimit(rps float64, burst int) gin.HandlerFunc {
	limiters := &clientLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(rps),
		burst:    burst,
	}

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}
		c.Next()
	}
}
