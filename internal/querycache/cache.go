// Package querycache is a keyed request cache with an explicit per-key
// state machine: idle -> loading -> success | error. Concurrent fetches for
// one key share a single underlying call, a refresh keeps the previous
// success visible while it is in flight, and invalidation guarantees that
// late results from superseded calls never repopulate the cache.
package querycache

import (
	"context"
	"sync"
)

// Status is the lifecycle state of one cache key.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	}
	return "unknown"
}

// Result is a snapshot of one key's state. During a refresh Data still
// holds the previous success while Loading is true, so callers can keep
// rendering stale data instead of flickering back to an empty state.
type Result struct {
	Status  Status
	Data    any
	Err     error
	Loading bool
}

// FetchFunc produces the value for a key.
type FetchFunc func(ctx context.Context) (any, error)

// Cache is safe for concurrent use.
type Cache struct {
	mu      sync.Mutex
	entries map[string]*entry
}

type entry struct {
	hasData bool
	data    any
	err     error
	call    *call
}

// call is one in-flight fetch shared by every caller of the same key.
type call struct {
	done chan struct{}
	data any
	err  error
}

func New() *Cache {
	return &Cache{entries: make(map[string]*entry)}
}

// Peek reports the current state of key without triggering a fetch.
func (c *Cache) Peek(key string) Result {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return Result{Status: StatusIdle}
	}

	r := Result{Data: e.data, Err: e.err, Loading: e.call != nil}
	switch {
	case e.call != nil:
		r.Status = StatusLoading
	case e.err != nil:
		r.Status = StatusError
	case e.hasData:
		r.Status = StatusSuccess
	default:
		r.Status = StatusIdle
	}
	return r
}

// Invalidate drops key. An in-flight call still completes and its waiters
// still receive the result, but the cache discards it.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

// InvalidateAll drops every key, so nothing fetched before survives.
func (c *Cache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// fetch resolves key. With force false a cached success is returned as is;
// with force true a new call starts even when a success is cached, while
// the cached value stays visible to Peek until the call settles. In both
// modes an in-flight call for the key is joined, never duplicated.
func (c *Cache) fetch(ctx context.Context, key string, fn FetchFunc, force bool) (any, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}

	if e.call != nil {
		cl := e.call
		c.mu.Unlock()
		return c.wait(ctx, cl)
	}

	if !force && e.hasData {
		data := e.data
		c.mu.Unlock()
		return data, nil
	}

	cl := &call{done: make(chan struct{})}
	e.call = cl
	c.mu.Unlock()

	data, err := fn(ctx)

	cl.data, cl.err = data, err
	close(cl.done)

	c.mu.Lock()
	// Settle the entry only if it was not invalidated while in flight.
	if current, ok := c.entries[key]; ok && current == e && e.call == cl {
		e.call = nil
		if err == nil {
			e.data, e.hasData, e.err = data, true, nil
		} else {
			e.err = err
		}
	}
	c.mu.Unlock()

	return data, err
}

func (c *Cache) wait(ctx context.Context, cl *call) (any, error) {
	select {
	case <-cl.done:
		return cl.data, cl.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Fetch returns the cached value for key, or runs fn to produce it.
func Fetch[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	return resolve[T](ctx, c, key, fn, false)
}

// Refresh re-runs fn for key even when a success is cached. Used for
// user-initiated retries.
func Refresh[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	return resolve[T](ctx, c, key, fn, true)
}

func resolve[T any](ctx context.Context, c *Cache, key string, fn func(ctx context.Context) (T, error), force bool) (T, error) {
	v, err := c.fetch(ctx, key, func(ctx context.Context) (any, error) {
		return fn(ctx)
	}, force)
	if err != nil {
		var zero T
		return zero, err
	}
	value, ok := v.(T)
	if !ok {
		var zero T
		return zero, nil
	}
	return value, nil
}
