package store

import (
	"context"
	"fmt"
	"time"

	"github.com/go-pkgz/lcw/v2"
)

// Interface is the preference storage wrapped by Cached.
type Interface interface {
	Get(ctx context.Context, visitor, key string) (string, error)
	Set(ctx context.Context, visitor, key, value string) error
	Delete(ctx context.Context, visitor, key string) error
	List(ctx context.Context, visitor string) ([]Pref, error)
	Count(ctx context.Context) (int, error)
	Prune(ctx context.Context, cutoff time.Time) (int64, error)
	Close() error
}

// Cached wraps a store Interface with a loading cache and satisfies the Interface itself.
// Cache is populated on reads via loader function, invalidated on writes.
type Cached struct {
	store Interface
	cache lcw.LoadingCache[string]
}

// NewCached creates a new cached store wrapper.
// maxKeys sets the maximum number of entries in the cache.
func NewCached(store Interface, maxKeys int) (*Cached, error) {
	cache, err := lcw.NewLruCache(lcw.NewOpts[string]().MaxKeys(maxKeys))
	if err != nil {
		return nil, fmt.Errorf("failed to create cache: %w", err)
	}
	return &Cached{store: store, cache: cache}, nil
}

// Get retrieves the value using cache with load-through. Misses are not cached.
func (c *Cached) Get(ctx context.Context, visitor, key string) (string, error) {
	val, err := c.cache.Get(cacheKey(visitor, key), func() (string, error) {
		v, loadErr := c.store.Get(ctx, visitor, key)
		if loadErr != nil {
			return "", fmt.Errorf("load from store: %w", loadErr)
		}
		return v, nil
	})
	if err != nil {
		return "", fmt.Errorf("cache get: %w", err)
	}
	return val, nil
}

// Set stores a value and invalidates the cache entry.
func (c *Cached) Set(ctx context.Context, visitor, key, value string) error {
	if err := c.store.Set(ctx, visitor, key, value); err != nil {
		return fmt.Errorf("store set: %w", err)
	}
	ck := cacheKey(visitor, key)
	c.cache.Invalidate(func(k string) bool { return k == ck })
	return nil
}

// Delete removes a value and invalidates the cache entry.
func (c *Cached) Delete(ctx context.Context, visitor, key string) error {
	// invalidate regardless of error, the value might have been cached
	ck := cacheKey(visitor, key)
	c.cache.Invalidate(func(k string) bool { return k == ck })
	if err := c.store.Delete(ctx, visitor, key); err != nil {
		return fmt.Errorf("store delete: %w", err)
	}
	return nil
}

// List returns the visitor's preferences from the underlying store (not cached).
func (c *Cached) List(ctx context.Context, visitor string) ([]Pref, error) {
	prefs, err := c.store.List(ctx, visitor)
	if err != nil {
		return nil, fmt.Errorf("store list: %w", err)
	}
	return prefs, nil
}

// Count returns the number of stored preferences (not cached).
func (c *Cached) Count(ctx context.Context) (int, error) {
	n, err := c.store.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("store count: %w", err)
	}
	return n, nil
}

// Prune removes stale preferences and drops the whole cache.
func (c *Cached) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	n, err := c.store.Prune(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("store prune: %w", err)
	}
	c.cache.Purge()
	return n, nil
}

// Close closes the cache and underlying store.
func (c *Cached) Close() error {
	_ = c.cache.Close()
	if err := c.store.Close(); err != nil {
		return fmt.Errorf("store close: %w", err)
	}
	return nil
}

// Stats returns cache statistics.
func (c *Cached) Stats() lcw.CacheStat {
	return c.cache.Stat()
}

func cacheKey(visitor, key string) string {
	return visitor + "\x00" + key
}
