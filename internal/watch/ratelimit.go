package watch

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultBackoff is the pause applied by Backoff when no duration is given.
const DefaultBackoff = 5 * time.Second

// RateLimitConfig holds rate limiting configuration for re-extraction.
type RateLimitConfig struct {
	// EventsPerSecond is the sustained rate limit.
	EventsPerSecond float64
	// Burst is the maximum burst size.
	Burst int
}

// RateLimiter throttles re-extractions triggered by file events.
// It uses a token bucket with an optional backoff period.
type RateLimiter struct {
	mu      sync.Mutex
	limiter *rate.Limiter
	retryAt time.Time
}

// NewRateLimiter creates a rate limiter. Non-positive values fall back to
// one event per second with a burst of one.
func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.EventsPerSecond <= 0 {
		cfg.EventsPerSecond = 1
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &RateLimiter{
		limiter: rate.NewLimiter(rate.Limit(cfg.EventsPerSecond), cfg.Burst),
	}
}

// Wait blocks until an event may be processed or ctx is done.
// It also respects any backoff period set by Backoff.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if d := time.Until(retryAt); d > 0 {
		timer := time.NewTimer(d)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	return r.limiter.Wait(ctx)
}

// Backoff pauses processing for d. A non-positive d uses DefaultBackoff.
func (r *RateLimiter) Backoff(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d <= 0 {
		d = DefaultBackoff
	}
	r.retryAt = time.Now().Add(d)
}

// Allow reports whether an event may be processed immediately.
func (r *RateLimiter) Allow() bool {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		return false
	}

	return r.limiter.Allow()
}
