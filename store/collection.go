// Package store keeps one cached copy of each remote collection so every
// screen reads and patches the same data.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"shopadmin/models"
)

// Keyed is implemented by every entity held in a Collection.
type Keyed interface {
	Key() models.ID
}

// FetchFunc loads the full collection from the backend.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// Collection caches one remote list. Local patches (Insert, Remove, Replace,
// Update) apply to the cached copy only and bump Version.
type Collection[T Keyed] struct {
	name  string
	fetch FetchFunc[T]
	log   *zap.Logger
	group singleflight.Group

	mu      sync.RWMutex
	items   []T
	loaded  bool
	version uint64
	// started numbers fetches; applied is the newest one stored.
	started uint64
	applied uint64
}

// NewCollection returns an empty collection backed by fetch.
func NewCollection[T Keyed](name string, fetch FetchFunc[T], log *zap.Logger) *Collection[T] {
	if log == nil {
		log = zap.NewNop()
	}
	return &Collection[T]{name: name, fetch: fetch, log: log.Named("store").With(zap.String("collection", name))}
}

// Name identifies the collection in logs.
func (c *Collection[T]) Name() string { return c.name }

// Load returns the cached items, fetching them on first use.
func (c *Collection[T]) Load(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return c.Items(), nil
	}
	return c.fetchShared(ctx, false)
}

// Refresh refetches the collection with a request that starts now, so it
// sees every write completed before the call. Concurrent callers share one
// request, and that request runs to completion even if the caller that
// started it goes away; a caller whose ctx ends just stops waiting.
func (c *Collection[T]) Refresh(ctx context.Context) ([]T, error) {
	return c.fetchShared(ctx, true)
}

// fetchShared joins the fetch in flight, or with fresh starts a new one. A
// fetch that finishes after a newer one has been stored is dropped.
func (c *Collection[T]) fetchShared(ctx context.Context, fresh bool) ([]T, error) {
	if fresh {
		c.group.Forget(c.name)
	}
	fetchCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(c.name, func() (any, error) {
		c.mu.Lock()
		c.started++
		seq := c.started
		c.mu.Unlock()

		items, err := c.fetch(fetchCtx)
		if err != nil {
			c.log.Warn("fetch failed", zap.Error(err))
			return nil, err
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		if seq < c.applied {
			c.log.Debug("dropped stale fetch", zap.Uint64("seq", seq))
			return nil, nil
		}
		c.items = append([]T(nil), items...)
		c.loaded = true
		c.applied = seq
		c.version++
		c.log.Debug("fetched", zap.Int("count", len(items)))
		return nil, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return c.Items(), nil
	}
}

// Invalidate drops the cached items so the next Load refetches.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.items = nil
	c.loaded = false
	c.version++
	c.mu.Unlock()
}

// Items returns a copy of the cached items.
func (c *Collection[T]) Items() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T{}, c.items...)
}

// Loaded reports whether a fetch has succeeded since the last Invalidate.
func (c *Collection[T]) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Version changes every time the cached items change.
func (c *Collection[T]) Version() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Get returns the item with id.
func (c *Collection[T]) Get(id models.ID) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i], true
	}
	var zero T
	return zero, false
}

// Insert appends item.
func (c *Collection[T]) Insert(item T) {
	c.mu.Lock()
	c.items = append(c.items, item)
	c.version++
	c.mu.Unlock()
}

// Remove drops the item whose key equals id and reports whether one existed.
func (c *Collection[T]) Remove(id models.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = append(c.items[:i:i], c.items[i+1:]...)
	c.version++
	return true
}

// Replace swaps in item for the entry with the same key.
func (c *Collection[T]) Replace(item T) bool {
	return c.Update(item.Key(), func(cur *T) { *cur = item })
}

// Update patches the item with id in place.
func (c *Collection[T]) Update(id models.ID, fn func(*T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	fn(&c.items[i])
	c.version++
	return true
}

func (c *Collection[T]) indexOf(id models.ID) int {
	for i := range c.items {
		if c.items[i].Key() == id {
			return i
		}
	}
	return -1
}
