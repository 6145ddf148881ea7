package config

import "time"

// CacheConfig defines settings for the read-path cache used by the
// load and booking services.  When Enabled is false or no Redis
// client can be reached, callers fall back to a no-op cache: caching
// is an optimization only and correctness must hold without it.
type CacheConfig struct {
    Enabled bool          // master switch for the cache component
    TTL     time.Duration // lifetime of cache entries
    Prefix  string        // key namespace, e.g. "loads" or "bookings"
}

// LoadCacheConfig reads environment variables to build a CacheConfig.
// Defaults are used when variables are not set.
func LoadCacheConfig(prefix string) CacheConfig {
    return CacheConfig{
        Enabled: envStr("CACHE_ENABLED", "true") == "true",
        TTL:     envDur("CACHE_TTL", 30*time.Second),
        Prefix:  envStr("CACHE_PREFIX", prefix),
    }
}
