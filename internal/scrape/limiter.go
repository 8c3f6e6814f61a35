package scrape

import (
	"context"
	"net/url"
	"sync"

	"golang.org/x/time/rate"
)

// hostLimiter rate-limits article fetches per publisher host so enrichment
// of several URLs from one blog does not hammer it.
type hostLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	perHost  rate.Limit
	burst    int
}

func newHostLimiter(requestsPerSecond float64, burst int) *hostLimiter {
	if burst <= 0 {
		burst = 2
	}
	return &hostLimiter{
		limiters: make(map[string]*rate.Limiter),
		perHost:  rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

// wait blocks until the host of rawURL has rate budget, or ctx is done.
func (l *hostLimiter) wait(ctx context.Context, rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return err
	}

	l.mu.Lock()
	limiter, ok := l.limiters[parsed.Host]
	if !ok {
		limiter = rate.NewLimiter(l.perHost, l.burst)
		l.limiters[parsed.Host] = limiter
	}
	l.mu.Unlock()

	return limiter.Wait(ctx)
}
