package catalogapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pagemark/go-catalog-client/catalog"
	"github.com/pagemark/go-catalog-client/gateway"
)

const wishlistPath = "/Wishlist"

// Wishlists is the wishlist collection source plus the entry endpoints
// that manage book membership. Wishlist reads and writes are always
// authenticated; the server scopes them to the credential's owner.
type Wishlists struct {
	resource[catalog.Wishlist, catalog.WishlistInput]
}

// NewWishlists builds the wishlist source.
func NewWishlists(gw gateway.Doer) *Wishlists {
	return &Wishlists{
		resource: resource[catalog.Wishlist, catalog.WishlistInput]{gw: gw, path: wishlistPath},
	}
}

// AddBook places a book on a wishlist. Callers go through the wishlist
// cache's Mutate so the mandated refetch follows.
func (w *Wishlists) AddBook(ctx context.Context, wishlistID, bookID string) error {
	_, err := w.gw.Do(ctx, http.MethodPost, entryPath(wishlistPath, wishlistID, bookID), nil)
	return err
}

// RemoveBook takes a book off a wishlist.
func (w *Wishlists) RemoveBook(ctx context.Context, wishlistID, bookID string) error {
	_, err := w.gw.Do(ctx, http.MethodDelete, entryPath(wishlistPath, wishlistID, bookID), nil)
	return err
}

// entryPath builds the nested books path shared by the wishlist and
// event entry endpoints.
func entryPath(root, ownerID, bookID string) string {
	return root + "/" + url.PathEscape(ownerID) + "/books/" + url.PathEscape(bookID)
}
