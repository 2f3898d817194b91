// Package catalogapi implements the collectioncache.Source contract for
// every remote collection: books, categories, authors, publishers,
// wishlists, events, and per-book reviews.
//
// All sources share one shape: list the collection root, POST it to
// create, PUT/DELETE the record path to mutate. Wishlists and events add
// nested entry endpoints for book membership, and Books adds TTL-cached
// per-key detail reads (by id, by category) that are invalidated when a
// book write goes through this package.
//
// Mutation payloads are validated client-side before the request is
// issued; a rejected payload surfaces through the same validation
// sentinel the server's own rejections map to.
package catalogapi
