// Package ratelimit implements a per-client sliding-window request limiter.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

var (
	// ErrRateLimited is the error reported for a rejected request.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrInvalidConfig indicates a limit below 1 or a non-positive window.
	ErrInvalidConfig = errors.New("ratelimit: limit must be at least 1 and window positive")
)

const shardCount = 64

// paddedMutex keeps neighbouring shard locks on separate cache lines.
type paddedMutex struct {
	sync.Mutex
	_ [56]byte
}

// Decision is the outcome of one admission check.
type Decision struct {
	Allowed bool
	// Remaining is how many more requests fit in the current window.
	Remaining int
	// RetryAfter is how long until a rejected client regains a slot.
	RetryAfter time.Duration
}

// Metrics receives limiter activity. All methods must be safe for concurrent use.
type Metrics interface {
	Admitted()
	Rejected()
	Clients(n int)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) Admitted()   {}
func (NoopMetrics) Rejected()   {}
func (NoopMetrics) Clients(int) {}

// Limiter admits at most limit requests per client in any rolling window.
type Limiter struct {
	store   Store
	now     func() time.Time
	metrics Metrics
	mu      [shardCount]paddedMutex
}

// Option configures a Limiter.
type Option func(*Limiter)

// WithClock sets the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(l *Limiter) {
		l.metrics = m
	}
}

// New creates a limiter backed by store.
func New(store Store, opts ...Option) *Limiter {
	l := &Limiter{
		store:   store,
		now:     time.Now,
		metrics: NoopMetrics{},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Validate checks a limit and window pair.
func Validate(limit int, window time.Duration) error {
	if limit < 1 || window <= 0 {
		return fmt.Errorf("%w: %d per %v", ErrInvalidConfig, limit, window)
	}
	return nil
}

// TryAdmit reports whether clientID may make a request now, recording it if so.
func (l *Limiter) TryAdmit(clientID string, limit int, window time.Duration) bool {
	return l.Allow(clientID, limit, window).Allowed
}

// Allow prunes clientID's timestamps older than window and admits the
// request if fewer than limit remain. A rejected request is not recorded.
// A limit below 1 or a non-positive window rejects everything.
func (l *Limiter) Allow(clientID string, limit int, window time.Duration) Decision {
	if Validate(limit, window) != nil {
		l.metrics.Rejected()
		return Decision{}
	}

	mu := &l.mu[fnv32a(clientID)%shardCount]
	mu.Lock()
	defer mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	prev, _ := l.store.Get(clientID)
	kept := make([]time.Time, 0, len(prev.Timestamps)+1)
	for _, ts := range prev.Timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= limit {
		l.store.Put(clientID, Window{Timestamps: kept, Span: window})
		l.metrics.Rejected()
		// A slot opens once the request that pushed the count to limit ages out.
		return Decision{
			Allowed:    false,
			RetryAfter: kept[len(kept)-limit].Add(window).Sub(now),
		}
	}

	kept = append(kept, now)
	l.store.Put(clientID, Window{Timestamps: kept, Span: window})
	l.metrics.Admitted()
	return Decision{Allowed: true, Remaining: limit - len(kept)}
}

// Reset forgets clientID's history.
func (l *Limiter) Reset(clientID string) {
	mu := &l.mu[fnv32a(clientID)%shardCount]
	mu.Lock()
	defer mu.Unlock()
	l.store.Delete(clientID)
}

// Sweep drops clients whose history has fully aged out and returns how many
// were dropped.
func (l *Limiter) Sweep() int {
	n := l.store.Prune(l.now())
	l.metrics.Clients(l.store.Len())
	return n
}

// Clients returns the number of tracked clients.
func (l *Limiter) Clients() int {
	return l.store.Len()
}

func fnv32a(s string) uint32 {
	const (
		offset32 = 2166136261
		prime32  = 16777619
	)
	h := uint32(offset32)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= prime32
	}
	return h
}
