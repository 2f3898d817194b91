package derive

import "github.com/pagemark/go-catalog-client/catalog"

// WishlistsContaining returns the wishlists from the given snapshot whose
// entry set contains bookID, in snapshot order.
//
// The snapshot is whatever the wishlist cache currently holds; while that
// cache is empty or still loading, the result is simply empty. Unknown
// membership renders as "no badges", not as an error.
func WishlistsContaining(wishlists []catalog.Wishlist, bookID string) []catalog.Wishlist {
	if bookID == "" {
		return nil
	}
	var out []catalog.Wishlist
	for _, w := range wishlists {
		if w.Contains(bookID) {
			out = append(out, w)
		}
	}
	return out
}

// WishlistIDsContaining is WishlistsContaining reduced to ids, for
// callers that only need membership keys.
func WishlistIDsContaining(wishlists []catalog.Wishlist, bookID string) []string {
	matched := WishlistsContaining(wishlists, bookID)
	if len(matched) == 0 {
		return nil
	}
	ids := make([]string, len(matched))
	for i, w := range matched {
		ids[i] = w.ID
	}
	return ids
}
