package session

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a per-client token bucket for API edits.
type RateLimiter struct {
	mu      sync.Mutex
	buckets map[string]*tokenBucket
	burst   float64
	refill  float64 // tokens per second
	now     func() time.Time
}

type tokenBucket struct {
	tokens     float64
	lastRefill time.Time
}

// NewRateLimiter allows each client perMinute edits per minute with a burst
// of about ten seconds worth, never less than 10.
func NewRateLimiter(perMinute int) *RateLimiter {
	return &RateLimiter{
		buckets: make(map[string]*tokenBucket),
		burst:   max(float64(perMinute)/6, 10),
		refill:  float64(perMinute) / 60.0,
		now:     time.Now,
	}
}

// Allow consumes a token for client and reports whether one was available.
func (r *RateLimiter) Allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	b, ok := r.buckets[client]
	if !ok {
		b = &tokenBucket{tokens: r.burst, lastRefill: now}
		r.buckets[client] = b
	}

	b.tokens = min(b.tokens+now.Sub(b.lastRefill).Seconds()*r.refill, r.burst)
	b.lastRefill = now

	if b.tokens >= 1 {
		b.tokens--
		return true
	}
	return false
}

// clientKey identifies the caller by remote host.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
