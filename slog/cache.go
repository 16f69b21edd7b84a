package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/figdoc"
)

// Ensure LoggingCache implements figdoc.Cache.
var _ figdoc.Cache = (*LoggingCache)(nil)

// LoggingCache wraps a Cache with debug logging of lookups and writes.
type LoggingCache struct {
	next   figdoc.Cache
	logger *slog.Logger
}

// NewLoggingCache creates a new LoggingCache.
func NewLoggingCache(next figdoc.Cache, logger *slog.Logger) *LoggingCache {
	return &LoggingCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs hit or miss.
func (c *LoggingCache) Get(ctx context.Context, key figdoc.CacheKey) (data []byte, err error) {
	defer func(begin time.Time) {
		s := "hit"
		if err != nil {
			s = "miss"
		}
		attrs := []any{"key", key.String(), "result", s, "duration", time.Since(begin)}
		if err != nil && figdoc.ErrorCode(err) != figdoc.ENOTFOUND {
			attrs = append(attrs, "err", err)
		}
		c.logger.Debug("cache get", attrs...)
	}(time.Now())
	return c.next.Get(ctx, key)
}

// Put delegates to the wrapped cache and logs the write.
func (c *LoggingCache) Put(ctx context.Context, key figdoc.CacheKey, version string, data []byte) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("cache put",
			"key", key.String(),
			"version", version,
			"bytes", len(data),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Put(ctx, key, version, data)
}

// List delegates to the wrapped cache.
func (c *LoggingCache) List(ctx context.Context) ([]*figdoc.CacheEntry, error) {
	return c.next.List(ctx)
}

// Stats delegates to the wrapped cache.
func (c *LoggingCache) Stats(ctx context.Context) (*figdoc.CacheStats, error) {
	return c.next.Stats(ctx)
}

// Clear delegates to the wrapped cache and logs how many entries went.
func (c *LoggingCache) Clear(ctx context.Context) (n int, err error) {
	defer func() {
		c.logger.Info("cache clear", "removed", n, "err", err)
	}()
	return c.next.Clear(ctx)
}

// Prune delegates to the wrapped cache and logs how many entries went.
func (c *LoggingCache) Prune(ctx context.Context) (n int, err error) {
	defer func() {
		c.logger.Info("cache prune", "removed", n, "err", err)
	}()
	return c.next.Prune(ctx)
}
