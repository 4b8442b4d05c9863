package middleware

import (
	"context"
	"net/http"
	"sync"
	"time"

	"finalprojectapi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiterStore holds a map of IP addresses to their rate limiters.
type RateLimiterStore struct {
	visitors map[string]*visitor
	perMin   int
	mu       sync.Mutex
	now      func() time.Time
}

// NewRateLimiterStore allows perMin requests per minute per IP, with the
// same number as burst.
func NewRateLimiterStore(perMin int) *RateLimiterStore {
	if perMin <= 0 {
		perMin = 1
	}
	return &RateLimiterStore{
		visitors: make(map[string]*visitor),
		perMin:   perMin,
		now:      time.Now,
	}
}

// getLimiter returns the rate limiter for a given IP, creating one if it doesn't exist.
func (s *RateLimiterStore) getLimiter(ip string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, exists := s.visitors[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.perMin)), s.perMin)}
		s.visitors[ip] = v
	}
	v.lastSeen = s.now()
	return v.limiter
}

// Prune drops limiters not used for longer than idle and returns how many went.
func (s *RateLimiterStore) Prune(idle time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-idle)
	removed := 0
	for ip, v := range s.visitors {
		if v.lastSeen.Before(cutoff) {
			delete(s.visitors, ip)
			removed++
		}
	}
	return removed
}

// Len reports how many client IPs are currently tracked.
func (s *RateLimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// RunCleanup prunes idle limiters every interval until ctx is done.
func (s *RateLimiterStore) RunCleanup(ctx context.Context, interval, idle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(idle); n > 0 {
				utils.GetLogger().Debug("Pruned idle rate limiters", zap.Int("removed", n))
			}
		}
	}
}

// RateLimitMiddleware limits requests per client IP. The IP comes from
// gin's ClientIP, so forwarding headers only count when they arrive through
// a proxy the engine trusts.
func RateLimitMiddleware(store *RateLimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		if !store.getLimiter(ip).Allow() {
			utils.GetLogger().Warn("Rate limit exceeded", zap.String("ip", ip))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded. Try again later."})
			return
		}
		c.Next()
	}
}
