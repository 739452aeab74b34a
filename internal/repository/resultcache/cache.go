// Package resultcache stores serialised results in an expiring key-value store.
//
// The store is best effort: read and write failures are treated as misses
// and the first failure of an outage is logged once, as is the recovery.
// Failures caused by the caller's own canceled context are not outages.
package resultcache

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/kailas-cloud/navigator/internal/db"
	"github.com/kailas-cloud/navigator/internal/domain"
)

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// Cache is a first-writer-wins cache over a key-value store.
type Cache struct {
	store      store
	prefix     string
	cacheTotal *prometheus.CounterVec
	errorTotal *prometheus.CounterVec
	available  prometheus.Gauge
	logger     *zap.Logger

	down atomic.Bool
}

// Option configures a Cache.
type Option func(*Cache)

// WithMetrics sets the hit/miss counter (labels "feature", "result"),
// the error counter (label "op") and the availability gauge. Any may be nil.
func WithMetrics(cacheTotal, errorTotal *prometheus.CounterVec, available prometheus.Gauge) Option {
	return func(c *Cache) {
		c.cacheTotal = cacheTotal
		c.errorTotal = errorTotal
		c.available = available
	}
}

// New creates a cache. prefix is prepended to every key.
func New(s store, prefix string, logger *zap.Logger, opts ...Option) *Cache {
	c := &Cache{store: s, prefix: prefix, logger: logger}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Key returns the store key for a namespaced identity.
func (c *Cache) Key(id string) string {
	return c.prefix + id
}

// Get returns the cached bytes for key. The label is used for metrics only.
func (c *Cache) Get(ctx context.Context, label, key string) ([]byte, bool) {
	data, err := c.store.Get(ctx, key)
	if err != nil {
		switch {
		case errors.Is(err, db.ErrKeyNotFound):
			c.markUp()
		case ctx.Err() == nil:
			c.markDown(db.OpGet, err)
		}
		c.inc(label, "miss")
		return nil, false
	}
	c.markUp()

	if len(data) == 0 {
		c.inc(label, "miss")
		return nil, false
	}
	c.inc(label, "hit")
	return data, true
}

// Put stores data under key unless a live entry already exists.
// It reports whether this call wrote the entry.
func (c *Cache) Put(ctx context.Context, key string, data []byte, ttl time.Duration) bool {
	err := c.store.SetNX(ctx, key, data, ttl)
	switch {
	case err == nil:
		c.markUp()
		return true
	case errors.Is(err, db.ErrKeyExists):
		c.markUp()
		return false
	case ctx.Err() != nil:
		return false
	default:
		c.markDown(db.OpSet, err)
		return false
	}
}

// Evict removes an entry that can no longer be served, so the next Put
// for key can write.
func (c *Cache) Evict(ctx context.Context, key string) {
	if err := c.store.Del(ctx, key); err != nil {
		if ctx.Err() == nil {
			c.markDown(db.OpDel, err)
		}
		return
	}
	c.markUp()
}

// Available reports whether the last store call succeeded.
func (c *Cache) Available() bool {
	return !c.down.Load()
}

// Err returns ErrCacheUnavailable during an outage.
func (c *Cache) Err() error {
	if c.down.Load() {
		return domain.ErrCacheUnavailable
	}
	return nil
}

func (c *Cache) markDown(op string, err error) {
	if c.errorTotal != nil {
		c.errorTotal.WithLabelValues(op).Inc()
	}
	if c.down.CompareAndSwap(false, true) {
		if c.available != nil {
			c.available.Set(0)
		}
		c.logger.Warn("Result cache unavailable, serving uncached results",
			zap.String("op", op), zap.Error(err))
	}
}

func (c *Cache) markUp() {
	if c.down.CompareAndSwap(true, false) {
		if c.available != nil {
			c.available.Set(1)
		}
		c.logger.Info("Result cache recovered")
	}
}

func (c *Cache) inc(label, result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(label, result).Inc()
	}
}
