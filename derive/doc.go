// Package derive holds the pure snapshot computations: wishlist
// membership and event temporal classification. Functions here keep no
// state and never suspend; they compute over whatever snapshot the
// caller hands them, so their results are exactly as fresh as the cache
// they were fed from.
package derive
