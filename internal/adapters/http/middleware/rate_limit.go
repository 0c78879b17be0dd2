package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Haleralex/epcqr/internal/adapters/http/common"
)

// RateLimitConfig bounds requests per client IP within a sliding window.
type RateLimitConfig struct {
	Limit  int
	Window time.Duration
}

// DefaultRateLimitConfig allows 120 requests per minute per IP - generous
// for interactive form use, tight enough to stop bulk abuse of the image
// endpoint.
func DefaultRateLimitConfig() *RateLimitConfig {
	return &RateLimitConfig{
		Limit:  120,
		Window: time.Minute,
	}
}

type rateBucket struct {
	count   int
	resetAt time.Time
}

type rateLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*rateBucket
	cfg       *RateLimitConfig
	nextSweep time.Time
}

func (rl *rateLimiter) allow(key string, now time.Time) (ok bool, retryAfter time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if now.After(rl.nextSweep) {
		rl.sweepLocked(now)
		rl.nextSweep = now.Add(rl.cfg.Window)
	}

	b := rl.buckets[key]
	if b == nil || now.After(b.resetAt) {
		rl.buckets[key] = &rateBucket{count: 1, resetAt: now.Add(rl.cfg.Window)}
		return true, 0
	}
	if b.count < rl.cfg.Limit {
		b.count++
		return true, 0
	}
	return false, time.Until(b.resetAt)
}

// sweepLocked drops expired buckets so the map does not grow with every IP
// seen. Runs inline under the lock at most once per window; no background
// goroutine to leak. Caller holds rl.mu.
func (rl *rateLimiter) sweepLocked(now time.Time) {
	for key, b := range rl.buckets {
		if now.After(b.resetAt) {
			delete(rl.buckets, key)
		}
	}
}

// RateLimit rejects clients over the limit with 429 and a Retry-After hint.
func RateLimit(cfg *RateLimitConfig) gin.HandlerFunc {
	if cfg == nil {
		cfg = DefaultRateLimitConfig()
	}

	rl := &rateLimiter{
		buckets:   make(map[string]*rateBucket),
		cfg:       cfg,
		nextSweep: time.Now().Add(cfg.Window),
	}

	return func(c *gin.Context) {
		ok, retryAfter := rl.allow(c.ClientIP(), time.Now())
		if !ok {
			seconds := int(retryAfter.Seconds()) + 1
			c.Header("Retry-After", strconv.Itoa(seconds))
			c.Abort()
			common.Error(c, http.StatusTooManyRequests, &common.APIError{
				Code:    common.ErrCodeTooManyRequests,
				Message: "rate limit exceeded",
			})
			return
		}
		c.Next()
	}
}
