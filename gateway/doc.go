// Package gateway is the module's single boundary with the remote catalog
// API. It owns request execution, bearer credential attachment, outbound
// rate limiting, and the classification of every failure into the error
// taxonomy the rest of the module matches on.
//
// Classification happens exactly once, here. Everything above the gateway
// (collection caches, derived views) sees *Error values wrapping one of
// the package sentinels and passes them along unchanged.
package gateway
