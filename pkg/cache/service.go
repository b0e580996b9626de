package cache

import "time"

// CacheService absorbs repeated reads of remote catalog data. Values are
// stored as-is (no serialization), so callers get back exactly what they
// put in and type-assert on retrieval.
type CacheService interface {
	// Get returns the cached value and true, or nil and false.
	Get(key string) (interface{}, bool)

	// Set stores a value under key for the given TTL.
	Set(key string, value interface{}, duration time.Duration)

	// Delete drops a single key, used to invalidate after writes.
	Delete(key string)

	// Flush drops everything.
	Flush()
}
