package cache

import (
	// Packages
	zap "go.uber.org/zap"

	fuel "github.com/fueltools/go-fuel"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring the cache
type Opt func(*Cache) error

///////////////////////////////////////////////////////////////////////////////
// OPTIONS

// WithLogger sets the logger for cache diagnostics
func WithLogger(log *zap.Logger) Opt {
	return func(cache *Cache) error {
		if log == nil {
			return fuel.ErrBadParameter.With("logger is required")
		}
		cache.log = log
		return nil
	}
}
