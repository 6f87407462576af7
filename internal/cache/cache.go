package cache

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"golang.org/x/sync/singleflight"
)

// ErrInvalidTTL is returned when GetOrCompute is called with a non-positive TTL.
var ErrInvalidTTL = errors.New("cache: ttl must be positive")

// PanicError is returned by GetOrCompute when compute panics. The panic is
// recovered in the computing goroutine and delivered to every waiter.
type PanicError struct {
	Key   string
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("cache: compute for %q panicked: %v", e.Key, e.Value)
}

// ComputeFunc produces the value for a missing key.
type ComputeFunc func(ctx context.Context) (any, error)

// Metrics receives cache activity. All methods must be safe for concurrent use.
type Metrics interface {
	Hit()
	Miss()
	Pruned(n int)
	Size(n int)
}

// NoopMetrics discards everything.
type NoopMetrics struct{}

func (NoopMetrics) Hit()       {}
func (NoopMetrics) Miss()      {}
func (NoopMetrics) Pruned(int) {}
func (NoopMetrics) Size(int)   {}

// Cache is a read-through TTL cache. Concurrent misses for the same key
// share a single computation.
type Cache struct {
	store   Store
	group   singleflight.Group
	now     func() time.Time
	metrics Metrics
	logger  *slog.Logger
}

// Option configures a Cache.
type Option func(*Cache)

// WithClock sets the time source (for testing).
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// WithMetrics sets the metrics sink.
func WithMetrics(m Metrics) Option {
	return func(c *Cache) {
		c.metrics = m
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = l
	}
}

// New creates a cache on top of store.
func New(store Store, opts ...Option) *Cache {
	c := &Cache{
		store:   store,
		now:     time.Now,
		metrics: NoopMetrics{},
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetOrCompute returns the live value stored under key. On a miss it calls
// compute, stores a successful result for ttl and returns it. Errors from
// compute are returned as-is and never stored.
//
// compute runs detached from ctx cancellation because its result may be
// shared with other callers; a caller whose ctx ends stops waiting and
// gets ctx.Err().
func (c *Cache) GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute ComputeFunc) (any, error) {
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}

	if e, ok := c.store.Get(key, c.now()); ok {
		c.metrics.Hit()
		c.logger.Debug("cache hit", "key", key)
		return e.Value, nil
	}
	c.metrics.Miss()

	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		// A flight that finished between our lookup and DoChan may have filled the key.
		if e, ok := c.store.Get(key, c.now()); ok {
			return e.Value, nil
		}

		val, err := c.compute(detached, key, compute)
		if err != nil {
			c.logger.Debug("cache compute failed", "key", key, "error", err)
			return nil, err
		}

		c.store.Put(key, Entry{Value: val, ExpiresAt: c.now().Add(ttl)})
		c.metrics.Size(c.store.Len())
		c.logger.Debug("cache store", "key", key, "ttl", ttl)
		return val, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// compute runs fn, converting a panic into a *PanicError. singleflight would
// otherwise re-panic on a goroutine nobody can recover.
func (c *Cache) compute(ctx context.Context, key string, fn ComputeFunc) (val any, err error) {
	defer func() {
		if v := recover(); v != nil {
			val, err = nil, &PanicError{Key: key, Value: v, Stack: debug.Stack()}
		}
	}()
	return fn(ctx)
}

// Invalidate drops key.
func (c *Cache) Invalidate(key string) {
	c.store.Delete(key)
	c.metrics.Size(c.store.Len())
}

// Prune removes all expired entries and returns how many were removed.
func (c *Cache) Prune() int {
	n := c.store.Prune(c.now())
	c.metrics.Pruned(n)
	c.metrics.Size(c.store.Len())
	return n
}

// Len returns the number of stored entries.
func (c *Cache) Len() int {
	return c.store.Len()
}
