package catalogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/gateway"
	"github.com/pagemark/go-catalog-client/internal/cacheinfra"
)

const bookPath = "/Book"

// Detail-key namespaces. Separate prefixes let a write invalidate one
// without the other.
const (
	bookKeyPrefix     = "book"
	categoryKeyPrefix = "books_by_category"
)

// Books is the book collection source. Besides the standard Source
// operations it offers per-key detail reads (by id, by category) behind a
// TTL cache, invalidated whenever a book write goes through.
type Books struct {
	resource[catalog.Book, catalog.BookInput]
	details    *cacheinfra.DetailCache[catalog.Book]
	byCategory *cacheinfra.DetailCache[[]catalog.Book]
}

// NewBooks builds the book source. cfg sizes the detail caches.
func NewBooks(gw gateway.Doer, cfg DetailCacheConfig) (*Books, error) {
	details, err := cacheinfra.NewDetailCache[catalog.Book](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	byCategory, err := cacheinfra.NewDetailCache[[]catalog.Book](cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return &Books{
		resource:   resource[catalog.Book, catalog.BookInput]{gw: gw, path: bookPath},
		details:    details,
		byCategory: byCategory,
	}, nil
}

// GetByID returns one book, served from the detail cache when fresh.
func (b *Books) GetByID(ctx context.Context, id string) (catalog.Book, error) {
	key := cacheinfra.Key(bookKeyPrefix, id)
	return b.details.GetOrFetch(ctx, key, func(ctx context.Context) (catalog.Book, error) {
		path := b.recordPath(id)
		data, err := b.gw.Do(ctx, http.MethodGet, path, nil)
		if err != nil {
			var zero catalog.Book
			return zero, err
		}
		return decodeOne[catalog.Book](path, data)
	})
}

// ByCategory returns the books filed under one category, served from the
// detail cache when fresh.
func (b *Books) ByCategory(ctx context.Context, categoryID string) ([]catalog.Book, error) {
	key := cacheinfra.Key(categoryKeyPrefix, categoryID)
	return b.byCategory.GetOrFetch(ctx, key, func(ctx context.Context) ([]catalog.Book, error) {
		path := bookPath + "/category/" + url.PathEscape(categoryID)
		data, err := b.gw.Do(ctx, http.MethodGet, path, nil)
		if err != nil {
			return nil, err
		}
		return decodeList[catalog.Book](path, data)
	})
}

// Create delegates to the collection endpoint and drops the category
// detail keys: the new book's id cannot be cached yet, but category
// listings may now be stale.
func (b *Books) Create(ctx context.Context, input catalog.BookInput) error {
	if err := b.resource.Create(ctx, input); err != nil {
		return err
	}
	b.byCategory.DeleteByPrefix(categoryKeyPrefix)
	return nil
}

// Update delegates to the record endpoint and drops the record's detail
// key plus all category listings, since the book may have moved category.
func (b *Books) Update(ctx context.Context, id string, input catalog.BookInput) error {
	if err := b.resource.Update(ctx, id, input); err != nil {
		return err
	}
	b.details.Delete(cacheinfra.Key(bookKeyPrefix, id))
	b.byCategory.DeleteByPrefix(categoryKeyPrefix)
	return nil
}

// Remove delegates to the record endpoint and drops the affected detail
// keys.
func (b *Books) Remove(ctx context.Context, id string) error {
	if err := b.resource.Remove(ctx, id); err != nil {
		return err
	}
	b.details.Delete(cacheinfra.Key(bookKeyPrefix, id))
	b.byCategory.DeleteByPrefix(categoryKeyPrefix)
	return nil
}
