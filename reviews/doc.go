// Package reviews manages per-book review caches and derives the rating
// aggregate from them. The cache for a book is created lazily on first
// touch and then shared, which is what guarantees a single in-flight
// review fetch per book across every consumer.
package reviews
