// Package collectioncache implements the stateful mirror of one remote
// collection: a snapshot, a lifecycle status, collapsed concurrent loads,
// and the write-then-refetch discipline every mutation follows.
//
// # Lifecycle
//
// A Cache starts Idle, moves to Loading when a fetch starts, then to
// Ready (snapshot replaced wholesale) or Error (snapshot retained from
// the last Ready state, error recorded). The status lets a consumer
// distinguish "never loaded", "loaded but the latest refresh failed",
// and "loaded and fresh".
//
// # Load collapsing
//
// Concurrent Load calls share a single network request via singleflight.
// Reload forces a fresh request: it bumps the cache's write generation
// and forgets the current flight, and any fetch that began under an older
// generation is returned to its waiters but never applied to the
// snapshot. Back-to-back writes therefore resolve to "last refetch wins",
// with no version vector maintained.
//
// # Write discipline
//
// Create, Update, Remove and the escape hatch Mutate all gate their
// return on a successful fresh reload, so a caller that awaited a write
// can immediately read a snapshot consistent with it. A failed write
// leaves the snapshot untouched and surfaces the classified error; the
// cache never retries on its own.
package collectioncache
