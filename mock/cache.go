package mock

import (
	"context"

	"github.com/fwojciec/figdoc"
)

var _ figdoc.Cache = (*Cache)(nil)

// Cache is a mock implementation of figdoc.Cache.
type Cache struct {
	GetFn   func(ctx context.Context, key figdoc.CacheKey) ([]byte, error)
	PutFn   func(ctx context.Context, key figdoc.CacheKey, version string, data []byte) error
	ListFn  func(ctx context.Context) ([]*figdoc.CacheEntry, error)
	StatsFn func(ctx context.Context) (*figdoc.CacheStats, error)
	ClearFn func(ctx context.Context) (int, error)
	PruneFn func(ctx context.Context) (int, error)
}

func (c *Cache) Get(ctx context.Context, key figdoc.CacheKey) ([]byte, error) {
	return c.GetFn(ctx, key)
}

func (c *Cache) Put(ctx context.Context, key figdoc.CacheKey, version string, data []byte) error {
	return c.PutFn(ctx, key, version, data)
}

func (c *Cache) List(ctx context.Context) ([]*figdoc.CacheEntry, error) {
	return c.ListFn(ctx)
}

func (c *Cache) Stats(ctx context.Context) (*figdoc.CacheStats, error) {
	return c.StatsFn(ctx)
}

func (c *Cache) Clear(ctx context.Context) (int, error) {
	return c.ClearFn(ctx)
}

func (c *Cache) Prune(ctx context.Context) (int, error) {
	return c.PruneFn(ctx)
}
