package catalogapi

import (
	"time"

	"github.com/pagemark/go-catalog-client/internal/cacheinfra"
)

// DetailCacheConfig exposes the detail-read cache options to consumers of
// this package.
type DetailCacheConfig struct {
	Capacity           int
	NumShards          int
	TTL                time.Duration
	EvictionPercentage int
	EvictionInterval   time.Duration
}

// DefaultDetailCacheConfig returns a config populated with sensible
// defaults.
func DefaultDetailCacheConfig() DetailCacheConfig {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c DetailCacheConfig) Validate() error {
	return c.toInternal().Validate()
}

func (c DetailCacheConfig) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		TTL:                c.TTL,
		EvictionPercentage: c.EvictionPercentage,
		EvictionInterval:   c.EvictionInterval,
	}
}

func convertFromInternal(cfg cacheinfra.Config) DetailCacheConfig {
	return DetailCacheConfig{
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		TTL:                cfg.TTL,
		EvictionPercentage: cfg.EvictionPercentage,
		EvictionInterval:   cfg.EvictionInterval,
	}
}
