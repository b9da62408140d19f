package crawl

import (
	"context"
	"time"

	"github.com/sennevb/docrawl"
	"golang.org/x/time/rate"
)

var _ docrawl.Limiter = (*DelayLimiter)(nil)

// DelayLimiter enforces a fixed pause between requests using a token bucket
// with burst 1: the first request passes immediately, each subsequent one
// waits out the configured delay.
type DelayLimiter struct {
	limiter *rate.Limiter
}

// NewDelayLimiter creates a DelayLimiter with the given inter-request
// delay. A non-positive delay disables pacing.
func NewDelayLimiter(delay time.Duration) *DelayLimiter {
	if delay <= 0 {
		return &DelayLimiter{limiter: rate.NewLimiter(rate.Inf, 1)}
	}
	return &DelayLimiter{limiter: rate.NewLimiter(rate.Every(delay), 1)}
}

// Wait blocks until the next request is allowed.
// Returns an error if the context is canceled before the wait completes.
func (d *DelayLimiter) Wait(ctx context.Context) error {
	return d.limiter.Wait(ctx)
}
