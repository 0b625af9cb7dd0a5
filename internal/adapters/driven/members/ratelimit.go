package members

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Default throttle for the Members API. The API publishes no quota, so the
// client stays well under any plausible one.
const (
	defaultRequestsPerSecond = 5.0
	defaultBurst             = 10
)

// rateLimiter combines proactive token-bucket throttling with a reactive
// backoff window set when the API answers 429.
type rateLimiter struct {
	mu      sync.Mutex
	bucket  *rate.Limiter
	retryAt time.Time
}

func newRateLimiter(requestsPerSecond float64, burst int) *rateLimiter {
	if requestsPerSecond <= 0 {
		requestsPerSecond = defaultRequestsPerSecond
	}
	if burst <= 0 {
		burst = defaultBurst
	}
	return &rateLimiter{bucket: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// wait blocks until a request may be sent, honouring both the bucket and
// any standing backoff window.
func (r *rateLimiter) wait(ctx context.Context) error {
	r.mu.Lock()
	retryAt := r.retryAt
	r.mu.Unlock()

	if time.Now().Before(retryAt) {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Until(retryAt)):
		}
	}
	return r.bucket.Wait(ctx)
}

// recordRetryAfter opens a backoff window after a 429 response.
func (r *rateLimiter) recordRetryAfter(seconds int) {
	if seconds <= 0 {
		seconds = 60
	}
	r.mu.Lock()
	r.retryAt = time.Now().Add(time.Duration(seconds) * time.Second)
	r.mu.Unlock()
}
