// Package ratelimit provides client-side rate limiting for upstream
// provider calls, keyed by provider resource so the token endpoint and
// the shopping endpoints are throttled independently.
package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// Config holds the limiter defaults.
type Config struct {
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig matches the upstream test-environment rate rules.
func DefaultConfig() Config {
	return Config{
		RequestsPerSecond: 10,
		Burst:             20,
	}
}

// ResourceLimiter maintains one token bucket per provider resource.
type ResourceLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults Config
}

// NewResourceLimiter creates a ResourceLimiter with the given defaults.
func NewResourceLimiter(cfg Config) *ResourceLimiter {
	return &ResourceLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: cfg,
	}
}

// limiter returns the bucket for a resource, creating it on first use.
func (r *ResourceLimiter) limiter(resource string) *rate.Limiter {
	r.mu.RLock()
	l, ok := r.limiters[resource]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok = r.limiters[resource]; ok {
		return l
	}
	l = rate.NewLimiter(rate.Limit(r.defaults.RequestsPerSecond), r.defaults.Burst)
	r.limiters[resource] = l
	return l
}

// SetLimit overrides the rate for a specific resource.
func (r *ResourceLimiter) SetLimit(resource string, rps float64, burst int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limiters[resource] = rate.NewLimiter(rate.Limit(rps), burst)
}

// Wait blocks until the resource's bucket permits a call or the context
// is cancelled.
func (r *ResourceLimiter) Wait(ctx context.Context, resource string) error {
	return r.limiter(resource).Wait(ctx)
}
