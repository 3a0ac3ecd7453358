package cache

import (
	"context"

	"golang.org/x/sync/singleflight"
)

// Loader combines an LRU cache with singleflight: concurrent requests for
// the same key while a compute is in flight share one result instead of
// recomputing the snapshot per request.
type Loader[T any] struct {
	cache *LRUCache[T]
	group singleflight.Group
}

func NewLoader[T any](cache *LRUCache[T]) *Loader[T] {
	return &Loader[T]{cache: cache}
}

// Load returns the cached value for key, or computes and caches it.
func (l *Loader[T]) Load(ctx context.Context, key string, compute func(context.Context) (T, error)) (T, error) {
	if v, ok := l.cache.Get(key); ok {
		return v, nil
	}

	v, err, _ := l.group.Do(key, func() (any, error) {
		// Re-check under the flight: a concurrent Load may have filled it.
		if v, ok := l.cache.Get(key); ok {
			return v, nil
		}
		computed, err := compute(ctx)
		if err != nil {
			return computed, err
		}
		l.cache.Set(key, computed)
		return computed, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}

// Invalidate drops the cached value for key and forgets any in-flight
// compute so the next Load sees fresh data.
func (l *Loader[T]) Invalidate(key string) {
	l.group.Forget(key)
	l.cache.Delete(key)
}

// InvalidateAll purges the underlying cache.
func (l *Loader[T]) InvalidateAll() {
	l.cache.Purge()
}

// CleanExpired drops expired entries from the underlying cache and returns
// how many were removed.
func (l *Loader[T]) CleanExpired() int {
	return l.cache.CleanExpired()
}
