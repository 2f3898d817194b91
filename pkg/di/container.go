// Package di wires the module together: one explicitly constructed cache
// per collection, shared by every consumer of that collection's data. No
// package-level singletons; the container's lifetime is the application
// scope that owns it.
package di

import (
	"context"
	"log/slog"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/catalogapi"
	"github.com/pagemark/go-catalog-client/collectioncache"
	"github.com/pagemark/go-catalog-client/gateway"
	"github.com/pagemark/go-catalog-client/refdata"
	"github.com/pagemark/go-catalog-client/reviews"
)

// Container holds the gateway, the per-collection caches, and the
// services derived from them.
type Container struct {
	doer gateway.Doer

	bookAPI     *catalogapi.Books
	wishlistAPI *catalogapi.Wishlists
	eventAPI    *catalogapi.Events

	books      *collectioncache.Cache[catalog.Book, catalog.BookInput]
	wishlists  *collectioncache.Cache[catalog.Wishlist, catalog.WishlistInput]
	events     *collectioncache.Cache[catalog.Event, catalog.EventInput]
	categories *refdata.CategoryCache
	authors    *refdata.AuthorCache
	publishers *refdata.PublisherCache

	refdata *refdata.AggregateCache
	reviews *reviews.Service
}

// New builds a container over the default HTTP gateway. tokens may be nil
// for an anonymous client; logger may be nil.
func New(cfg gateway.Config, tokens gateway.TokenProvider, logger *slog.Logger) (*Container, error) {
	gw, err := gateway.New(cfg, tokens, logger)
	if err != nil {
		return nil, err
	}
	return NewWithDoer(gw, catalogapi.DefaultDetailCacheConfig(), logger)
}

// NewWithDoer builds a container over a caller-supplied transport.
// Useful in tests and for alternate transports.
func NewWithDoer(doer gateway.Doer, detailCfg catalogapi.DetailCacheConfig, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	bookAPI, err := catalogapi.NewBooks(doer, detailCfg)
	if err != nil {
		return nil, err
	}
	wishlistAPI := catalogapi.NewWishlists(doer)
	eventAPI := catalogapi.NewEvents(doer)

	categories := collectioncache.New("categories", catalogapi.NewCategories(doer), logger)
	authors := collectioncache.New("authors", catalogapi.NewAuthors(doer), logger)
	publishers := collectioncache.New("publishers", catalogapi.NewPublishers(doer), logger)

	return &Container{
		doer:        doer,
		bookAPI:     bookAPI,
		wishlistAPI: wishlistAPI,
		eventAPI:    eventAPI,
		books:       collectioncache.New[catalog.Book, catalog.BookInput]("books", bookAPI, logger),
		wishlists:   collectioncache.New[catalog.Wishlist, catalog.WishlistInput]("wishlists", wishlistAPI, logger),
		events:      collectioncache.New[catalog.Event, catalog.EventInput]("events", eventAPI, logger),
		categories:  categories,
		authors:     authors,
		publishers:  publishers,
		refdata:     refdata.New(categories, authors, publishers),
		reviews:     reviews.NewService(catalogapi.NewReviews(doer), logger),
	}, nil
}

// Gateway returns the transport every source calls through.
func (c *Container) Gateway() gateway.Doer { return c.doer }

// Books returns the shared book collection cache.
func (c *Container) Books() *collectioncache.Cache[catalog.Book, catalog.BookInput] {
	return c.books
}

// BookDirectory returns the book source's detail reads (by id, by
// category).
func (c *Container) BookDirectory() *catalogapi.Books { return c.bookAPI }

// Wishlists returns the shared wishlist collection cache.
func (c *Container) Wishlists() *collectioncache.Cache[catalog.Wishlist, catalog.WishlistInput] {
	return c.wishlists
}

// Events returns the shared event collection cache.
func (c *Container) Events() *collectioncache.Cache[catalog.Event, catalog.EventInput] {
	return c.events
}

// Categories returns the shared category cache.
func (c *Container) Categories() *refdata.CategoryCache { return c.categories }

// Authors returns the shared author cache.
func (c *Container) Authors() *refdata.AuthorCache { return c.authors }

// Publishers returns the shared publisher cache.
func (c *Container) Publishers() *refdata.PublisherCache { return c.publishers }

// Dropdowns returns the reference-data aggregate.
func (c *Container) Dropdowns() *refdata.AggregateCache { return c.refdata }

// Reviews returns the rating service.
func (c *Container) Reviews() *reviews.Service { return c.reviews }

// AddBookToWishlist issues the entry write and reloads the wishlist cache
// before returning, keeping the write-then-refetch discipline for the
// nested endpoint.
func (c *Container) AddBookToWishlist(ctx context.Context, wishlistID, bookID string) error {
	return c.wishlists.Mutate(ctx, func(ctx context.Context) error {
		return c.wishlistAPI.AddBook(ctx, wishlistID, bookID)
	})
}

// RemoveBookFromWishlist issues the entry delete and reloads the wishlist
// cache before returning.
func (c *Container) RemoveBookFromWishlist(ctx context.Context, wishlistID, bookID string) error {
	return c.wishlists.Mutate(ctx, func(ctx context.Context) error {
		return c.wishlistAPI.RemoveBook(ctx, wishlistID, bookID)
	})
}

// AddBookToEvent issues the entry write and reloads the event cache
// before returning.
func (c *Container) AddBookToEvent(ctx context.Context, eventID, bookID string) error {
	return c.events.Mutate(ctx, func(ctx context.Context) error {
		return c.eventAPI.AddBook(ctx, eventID, bookID)
	})
}

// RemoveBookFromEvent issues the entry delete and reloads the event cache
// before returning.
func (c *Container) RemoveBookFromEvent(ctx context.Context, eventID, bookID string) error {
	return c.events.Mutate(ctx, func(ctx context.Context) error {
		return c.eventAPI.RemoveBook(ctx, eventID, bookID)
	})
}

// Close drops all cache subscribers. In-flight requests are not canceled;
// their late results fire no callbacks.
func (c *Container) Close() {
	c.books.Close()
	c.wishlists.Close()
	c.events.Close()
	c.categories.Close()
	c.authors.Close()
	c.publishers.Close()
	c.reviews.Close()
}
