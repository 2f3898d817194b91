package collectioncache

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Status is the lifecycle state of a collection cache.
type Status int

const (
	// StatusIdle: created, never fetched.
	StatusIdle Status = iota
	// StatusLoading: a fetch is in flight and no result has landed yet.
	StatusLoading
	// StatusReady: the snapshot reflects the last successful fetch.
	StatusReady
	// StatusError: the last fetch failed; the snapshot, if any, is the
	// last-known-good one.
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// State is one observable point in a cache's lifecycle. Snapshot is
// replaced wholesale on every successful fetch and never merged
// partially; callers must not mutate it.
type State[T any] struct {
	Snapshot []T
	Status   Status
	LastErr  error
}

// loadKey is the singleflight key shared by all concurrent loads of one
// cache. One cache mirrors one collection, so a single key suffices.
const loadKey = "load"

// Cache mirrors one remote collection. Reads are collapsed so at most one
// fetch per cache is in flight; every successful write forces a fresh
// reload before the write call returns, so a caller that awaited its
// write always observes a snapshot consistent with it.
type Cache[T, I any] struct {
	name   string
	source Source[T, I]
	logger *slog.Logger
	flight singleflight.Group

	mu    sync.Mutex
	state State[T]
	// writeGen increments on every forced reload request. A fetch that
	// began under an older generation is discarded instead of applied,
	// which makes the post-write refetch authoritative.
	writeGen uint64

	subMu   sync.Mutex
	subs    map[uint64]func(State[T])
	nextSub uint64
	closed  bool
}

// New creates a cache over the given source. name tags log lines; logger
// may be nil.
func New[T, I any](name string, source Source[T, I], logger *slog.Logger) *Cache[T, I] {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache[T, I]{
		name:   name,
		source: source,
		logger: logger,
		subs:   make(map[uint64]func(State[T])),
	}
}

// State returns the cache's current state. The snapshot slice is shared;
// treat it as read-only.
func (c *Cache[T, I]) State() State[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Snapshot returns the current snapshot without forcing a fetch.
func (c *Cache[T, I]) Snapshot() []T {
	return c.State().Snapshot
}

// Status returns the cache's lifecycle status.
func (c *Cache[T, I]) Status() Status {
	return c.State().Status
}

// Load fetches the full collection. Concurrent calls while a fetch is in
// flight join that fetch rather than issuing another request. On success
// the snapshot is replaced wholesale; on failure the previous snapshot is
// retained and the error recorded in the cache state as well as returned.
func (c *Cache[T, I]) Load(ctx context.Context) ([]T, error) {
	v, err, _ := c.flight.Do(loadKey, func() (any, error) {
		return c.fetch(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]T), nil
}

// Reload forces a fresh fetch: an in-flight load started before this call
// can neither satisfy it nor overwrite its result.
func (c *Cache[T, I]) Reload(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	c.writeGen++
	c.mu.Unlock()
	c.flight.Forget(loadKey)
	return c.Load(ctx)
}

// fetch performs one round trip and applies the result unless a forced
// reload was requested while it was in flight.
func (c *Cache[T, I]) fetch(ctx context.Context) ([]T, error) {
	c.mu.Lock()
	gen := c.writeGen
	c.state.Status = StatusLoading
	st := c.state
	c.mu.Unlock()
	c.notify(st)

	items, err := c.source.List(ctx)

	c.mu.Lock()
	if c.writeGen != gen {
		// A write landed while this fetch was in flight; its own reload
		// owns the resting snapshot. Return the result to waiters without
		// touching cache state.
		c.mu.Unlock()
		c.logger.Debug("stale fetch discarded", "cache", c.name)
		return items, err
	}
	if err != nil {
		c.state.Status = StatusError
		c.state.LastErr = err
	} else {
		c.state.Snapshot = items
		c.state.Status = StatusReady
		c.state.LastErr = nil
	}
	st = c.state
	c.mu.Unlock()
	c.notify(st)

	if err != nil {
		c.logger.Debug("load failed", "cache", c.name, "error", err)
		return nil, err
	}
	c.logger.Debug("load complete", "cache", c.name, "records", len(items))
	return items, nil
}

// Create issues the write and, on success, reloads the collection before
// returning. On failure the cache state is left untouched and the
// classified error is returned to the caller.
func (c *Cache[T, I]) Create(ctx context.Context, input I) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.source.Create(ctx, input)
	})
}

// Update issues the write and, on success, reloads the collection before
// returning.
func (c *Cache[T, I]) Update(ctx context.Context, id string, input I) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.source.Update(ctx, id, input)
	})
}

// Remove issues the delete and, on success, reloads the collection before
// returning.
func (c *Cache[T, I]) Remove(ctx context.Context, id string) error {
	return c.Mutate(ctx, func(ctx context.Context) error {
		return c.source.Remove(ctx, id)
	})
}

// Mutate runs an arbitrary write against the backing collection and, when
// it succeeds, forces a fresh reload before returning. It exists for
// writes outside the standard Source trio, such as wishlist and event
// entry endpoints; every mutation of the collection must pass through
// here so the refetch discipline holds.
func (c *Cache[T, I]) Mutate(ctx context.Context, write func(context.Context) error) error {
	if err := write(ctx); err != nil {
		return err
	}
	if _, err := c.Reload(ctx); err != nil {
		// The write landed but the mandated refetch did not; the cache is
		// in StatusError and the caller must not assume freshness.
		return err
	}
	return nil
}

// Subscribe registers fn to run after every state transition. The
// returned cancel removes the subscription; a canceled subscriber never
// receives a late notification from a fetch that was still in flight.
func (c *Cache[T, I]) Subscribe(fn func(State[T])) (cancel func()) {
	c.subMu.Lock()
	defer c.subMu.Unlock()
	if c.closed {
		return func() {}
	}
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.subMu.Lock()
		delete(c.subs, id)
		c.subMu.Unlock()
	}
}

// Close drops all subscribers. In-flight fetches still settle their
// callers but notify no one.
func (c *Cache[T, I]) Close() {
	c.subMu.Lock()
	c.closed = true
	c.subs = nil
	c.subMu.Unlock()
}

func (c *Cache[T, I]) notify(st State[T]) {
	c.subMu.Lock()
	fns := make([]func(State[T]), 0, len(c.subs))
	for _, fn := range c.subs {
		fns = append(fns, fn)
	}
	c.subMu.Unlock()

	for _, fn := range fns {
		fn(st)
	}
}
