package reviews

import (
	"context"
	"log/slog"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/collectioncache"
)

// Cache is the review collection cache for one book.
type Cache = collectioncache.Cache[catalog.Review, catalog.ReviewInput]

// API produces the per-book review sources plus the server's aggregate
// view. Implemented by catalogapi.Reviews.
type API interface {
	ForBook(bookID string) collectioncache.Source[catalog.Review, catalog.ReviewInput]
	Average(ctx context.Context, bookID string) (float64, error)
}

// Service manages one review cache per book. Each cache collapses its own
// concurrent loads, so at most one review fetch per book is ever in
// flight, and a submission's refetch always runs to completion before the
// submission resolves.
type Service struct {
	api    API
	logger *slog.Logger
	caches *xsync.MapOf[string, *Cache]
}

// NewService builds the review service. logger may be nil.
func NewService(api API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:    api,
		logger: logger,
		caches: xsync.NewMapOf[string, *Cache](),
	}
}

// Cache returns the review cache for a book, creating it on first use.
// Exposed so consumers can subscribe to review changes for a book they
// are displaying.
func (s *Service) Cache(bookID string) *Cache {
	c, _ := s.caches.LoadOrCompute(bookID, func() *Cache {
		return collectioncache.New("reviews:"+bookID, s.api.ForBook(bookID), s.logger)
	})
	return c
}

// Load fetches a book's reviews, joining any fetch already in flight for
// that book.
func (s *Service) Load(ctx context.Context, bookID string) ([]catalog.Review, error) {
	return s.Cache(bookID).Load(ctx)
}

// Submit validates and posts a review, then refetches the book's review
// list before returning, so the caller never observes its own review
// missing from the aggregate. The refetch is forced: a background refresh
// already in flight cannot satisfy it, and the post-write fetch owns the
// resting snapshot.
func (s *Service) Submit(ctx context.Context, input catalog.ReviewInput) error {
	return s.Cache(input.BookID).Create(ctx, input)
}

// ServerAverage returns the server's own average for a book.
func (s *Service) ServerAverage(ctx context.Context, bookID string) (float64, error) {
	return s.api.Average(ctx, bookID)
}

// Close drops the subscribers of every per-book cache.
func (s *Service) Close() {
	s.caches.Range(func(_ string, c *Cache) bool {
		c.Close()
		return true
	})
}
