package middleware

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// Expired buckets must be dropped during normal operation - the limiter has
// no background goroutine, so the map hygiene happens inline in allow.
func TestRateLimiter_AllowSweepsExpiredBuckets(t *testing.T) {
	rl := &rateLimiter{
		buckets: make(map[string]*rateBucket),
		cfg:     &RateLimitConfig{Limit: 1, Window: time.Minute},
	}

	now := time.Now()
	rl.allow("10.0.0.1", now)
	rl.allow("10.0.0.2", now)

	rl.mu.Lock()
	assert.Len(t, rl.buckets, 2)
	rl.mu.Unlock()

	// Past both buckets' expiry and the sweep deadline.
	later := now.Add(2 * time.Minute)
	ok, _ := rl.allow("10.0.0.3", later)
	assert.True(t, ok)

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.buckets, "10.0.0.1")
	assert.NotContains(t, rl.buckets, "10.0.0.2")
	assert.Contains(t, rl.buckets, "10.0.0.3")
}

// A client inside its window must not be swept or reset.
func TestRateLimiter_SweepKeepsLiveBuckets(t *testing.T) {
	rl := &rateLimiter{
		buckets: make(map[string]*rateBucket),
		cfg:     &RateLimitConfig{Limit: 2, Window: time.Minute},
	}

	now := time.Now()
	rl.allow("10.0.0.1", now)
	rl.allow("10.0.0.1", now.Add(time.Second))

	// Third request within the window is over the limit even though a sweep
	// deadline has not passed.
	ok, retryAfter := rl.allow("10.0.0.1", now.Add(2*time.Second))
	assert.False(t, ok)
	assert.Positive(t, retryAfter)
}
