// Package cacheinfra adapts the sturdyc in-memory cache for the per-key
// detail reads the catalog sources offer (book by id, books by category).
// Collection snapshots never pass through here; they live in
// collectioncache, which has its own consistency rules.
package cacheinfra

import (
	"context"
	"strings"
	"time"

	"github.com/viccon/sturdyc"
)

// KeySeparator delimits cache key segments.
const KeySeparator = "::"

// Key builds a detail-cache key from its segments. Segments are plain
// strings (method names and ids), so simple joining yields stable keys.
func Key(parts ...string) string {
	return strings.Join(parts, KeySeparator)
}

// Config holds the settings for a detail cache.
type Config struct {
	// Capacity is the maximum number of entries. Must be greater than 0.
	Capacity int

	// NumShards controls shard count for concurrent access. Must be
	// greater than 0.
	NumShards int

	// TTL is how long a detail read stays valid without a fresh fetch.
	// Must be greater than 0.
	TTL time.Duration

	// EvictionPercentage is what share of entries to evict when the cache
	// is full. Must be between 1 and 100.
	EvictionPercentage int

	// EvictionInterval sets how often expired entries are collected.
	// Zero uses the sturdyc default.
	EvictionInterval time.Duration
}

// DefaultConfig returns settings sized for reference lookups in a single
// client process.
func DefaultConfig() Config {
	return Config{
		Capacity:           2048,
		NumShards:          64,
		TTL:                5 * time.Minute,
		EvictionPercentage: 10,
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return &ConfigError{Field: "Capacity", Message: "must be greater than 0"}
	}
	if c.NumShards <= 0 {
		return &ConfigError{Field: "NumShards", Message: "must be greater than 0"}
	}
	if c.TTL <= 0 {
		return &ConfigError{Field: "TTL", Message: "must be greater than 0"}
	}
	if c.EvictionPercentage < 1 || c.EvictionPercentage > 100 {
		return &ConfigError{Field: "EvictionPercentage", Message: "must be between 1 and 100"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}

// DetailCache is a typed read-through cache over sturdyc. Concurrent
// fetches of the same key collapse to one call against the source.
type DetailCache[T any] struct {
	client *sturdyc.Client[T]
}

// NewDetailCache validates cfg and builds the cache.
func NewDetailCache[T any](cfg Config) (*DetailCache[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var options []sturdyc.Option
	if cfg.EvictionInterval > 0 {
		options = append(options, sturdyc.WithEvictionInterval(cfg.EvictionInterval))
	}

	client := sturdyc.New[T](
		cfg.Capacity,
		cfg.NumShards,
		cfg.TTL,
		cfg.EvictionPercentage,
		options...,
	)
	return &DetailCache[T]{client: client}, nil
}

// GetOrFetch returns the cached value for key, calling fetch on a miss
// and storing the result. A fetch error is returned without being cached.
func (d *DetailCache[T]) GetOrFetch(ctx context.Context, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	return d.client.GetOrFetch(ctx, key, fetch)
}

// Delete drops one entry.
func (d *DetailCache[T]) Delete(key string) {
	d.client.Delete(key)
}

// DeleteByPrefix drops every entry whose key starts with prefix. An empty
// prefix drops everything; the sources use that after a write whose blast
// radius cannot be narrowed to specific keys.
func (d *DetailCache[T]) DeleteByPrefix(prefix string) {
	for _, key := range d.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) {
			d.client.Delete(key)
		}
	}
}

// Size reports the number of resident entries.
func (d *DetailCache[T]) Size() int {
	return d.client.Size()
}
