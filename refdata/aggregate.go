// Package refdata bundles the three reference collections every catalog
// form needs as dropdown options: categories, authors, publishers.
//
// Reference data changes rarely, so the aggregate loads once and holds
// its options for the life of the consuming scope; the cost of a stale
// dropdown is judged lower than the cost of refetching on every form
// open. ForceReload exists for the one case that matters: an admin
// mutating reference data and returning to a form in the same session.
package refdata

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/collectioncache"
)

// CategoryCache, AuthorCache and PublisherCache name the cache types the
// aggregate composes.
type (
	CategoryCache  = collectioncache.Cache[catalog.Category, catalog.CategoryInput]
	AuthorCache    = collectioncache.Cache[catalog.Author, catalog.AuthorInput]
	PublisherCache = collectioncache.Cache[catalog.Publisher, catalog.PublisherInput]
)

// AggregateCache loads the three reference collections in parallel and
// exposes them all-or-nothing: until every load has succeeded, the
// accessors return nil. A form never renders some dropdowns populated and
// others silently empty.
type AggregateCache struct {
	categories *CategoryCache
	authors    *AuthorCache
	publishers *PublisherCache

	mu     sync.Mutex
	loaded bool
}

// New composes an aggregate over the three caches.
func New(categories *CategoryCache, authors *AuthorCache, publishers *PublisherCache) *AggregateCache {
	return &AggregateCache{
		categories: categories,
		authors:    authors,
		publishers: publishers,
	}
}

// EnsureLoaded fetches all three collections in parallel on first use and
// is a no-op once they have all loaded. If any load fails the aggregate
// stays unloaded and the first error is returned; a later call retries
// all three.
func (a *AggregateCache) EnsureLoaded(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loaded {
		return nil
	}
	if err := a.loadAll(ctx, false); err != nil {
		return err
	}
	a.loaded = true
	return nil
}

// ForceReload refetches all three collections regardless of load state.
// On failure the aggregate reverts to unloaded.
func (a *AggregateCache) ForceReload(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.loaded = false
	if err := a.loadAll(ctx, true); err != nil {
		return err
	}
	a.loaded = true
	return nil
}

// loadAll runs the three loads in parallel. force bypasses each cache's
// resident snapshot.
func (a *AggregateCache) loadAll(ctx context.Context, force bool) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loadOne(ctx, a.categories, force)
	})
	g.Go(func() error {
		return loadOne(ctx, a.authors, force)
	})
	g.Go(func() error {
		return loadOne(ctx, a.publishers, force)
	})
	return g.Wait()
}

func loadOne[T, I any](ctx context.Context, c *collectioncache.Cache[T, I], force bool) error {
	var err error
	if force {
		_, err = c.Reload(ctx)
	} else {
		_, err = c.Load(ctx)
	}
	return err
}

// Loaded reports whether all three collections are resident.
func (a *AggregateCache) Loaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.loaded
}

// Categories returns the category options, or nil until the aggregate
// has fully loaded.
func (a *AggregateCache) Categories() []catalog.Category {
	if !a.Loaded() {
		return nil
	}
	return a.categories.Snapshot()
}

// Authors returns the author options, or nil until the aggregate has
// fully loaded.
func (a *AggregateCache) Authors() []catalog.Author {
	if !a.Loaded() {
		return nil
	}
	return a.authors.Snapshot()
}

// Publishers returns the publisher options, or nil until the aggregate
// has fully loaded.
func (a *AggregateCache) Publishers() []catalog.Publisher {
	if !a.Loaded() {
		return nil
	}
	return a.publishers.Snapshot()
}
