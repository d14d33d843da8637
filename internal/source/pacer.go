package source

import (
	"context"
	"time"
)

// Pacer enforces a fixed minimum delay between consecutive requests to stay
// under a provider's rate limit, regardless of request outcome.
type Pacer struct {
	delay time.Duration
	last  time.Time
}

func NewPacer(delay time.Duration) *Pacer {
	return &Pacer{delay: delay}
}

// Wait blocks until the configured delay since the previous request has
// elapsed. The first call returns immediately.
func (p *Pacer) Wait(ctx context.Context) error {
	if !p.last.IsZero() {
		if remaining := p.delay - time.Since(p.last); remaining > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(remaining):
			}
		}
	}
	p.last = time.Now()
	return nil
}
