package session

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"
)

// lazy is a single-assignment cache. The first successful load is kept for
// the life of the session; a failed load is returned to every caller that
// waited on it and then forgotten, so the next Get tries again.
// Concurrent Gets while a load is in flight share that load.
type lazy[T any] struct {
	load func(context.Context) (T, error)

	mu    sync.RWMutex
	value T
	done  bool

	group singleflight.Group
}

func newLazy[T any](load func(context.Context) (T, error)) *lazy[T] {
	return &lazy[T]{load: load}
}

// Peek returns the cached value without loading.
func (l *lazy[T]) Peek() (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.value, l.done
}

// Get returns the cached value, loading it first if needed.
//
// The load runs detached from ctx cancellation so one visitor abandoning a
// request does not fail the load shared with their other tabs.
func (l *lazy[T]) Get(ctx context.Context) (T, error) {
	if v, ok := l.Peek(); ok {
		return v, nil
	}

	v, err, _ := l.group.Do("load", func() (any, error) {
		if v, ok := l.Peek(); ok {
			return v, nil
		}
		v, err := l.load(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		if !l.done {
			l.value = v
			l.done = true
		}
		v = l.value
		l.mu.Unlock()
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return v.(T), nil
}
