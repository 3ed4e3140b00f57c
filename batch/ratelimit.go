package batch

import (
	"context"
	"strings"
	"sync"

	"github.com/fwojciec/orgscrape"
	"golang.org/x/time/rate"
)

var _ orgscrape.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to the same host with one token bucket
// per host. Hosts are compared case-insensitively and a leading "www." is
// ignored, so www.acme.my and acme.my share a bucket.
type DomainLimiter struct {
	rps float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewDomainLimiter allows rps requests per second to each host, without
// bursting. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	if d.rps <= 0 {
		return ctx.Err()
	}
	return d.limiter(hostKey(domain)).Wait(ctx)
}

func (d *DomainLimiter) limiter(key string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	l, ok := d.limiters[key]
	if !ok {
		l = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[key] = l
	}
	return l
}

func hostKey(domain string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(domain)), "www.")
}
