package middlewares

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// visitor holds the rate limiter and the last time we saw this IP.
type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// limiterSet is a per-IP family of limiters sharing one rate and burst.
type limiterSet struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	every    time.Duration
	burst    int
}

func newLimiterSet(every time.Duration, burst int) *limiterSet {
	return &limiterSet{visitors: make(map[string]*visitor), every: every, burst: burst}
}

var (
	// General API traffic: 1 request/second average, burst of 100.
	apiLimiters = newLimiterSet(time.Second, 100)

	// Pair choices: one pick every 200ms, burst of 10. Stops double-tap floods on a game.
	chooseLimiters = newLimiterSet(200*time.Millisecond, 10)
)

func (s *limiterSet) get(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rate.Every(s.every), s.burst)
		s.visitors[ip] = &visitor{limiter: limiter, lastSeen: time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (s *limiterSet) reset() {
	s.mu.Lock()
	s.visitors = make(map[string]*visitor)
	s.mu.Unlock()
}

// prune drops visitors idle for longer than idle.
func (s *limiterSet) prune(idle time.Duration) {
	cutoff := time.Now().Add(-idle)
	s.mu.Lock()
	defer s.mu.Unlock()
	for ip, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, ip)
		}
	}
}

// PruneVisitors forgets IPs not seen within idle.
func PruneVisitors(idle time.Duration) {
	apiLimiters.prune(idle)
	chooseLimiters.prune(idle)
}

func limit(set *limiterSet, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !set.get(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": message})
			return
		}
		c.Next()
	}
}

// RateLimitMiddleware applies a simple per-IP rate limit for all routes.
func RateLimitMiddleware() gin.HandlerFunc {
	return limit(apiLimiters, "Too many requests. Please slow down.")
}

// ChooseRateLimitMiddleware applies a stricter per-IP limit to pair choices.
func ChooseRateLimitMiddleware() gin.HandlerFunc {
	return limit(chooseLimiters, "Too many choices. Please wait and try again.")
}
