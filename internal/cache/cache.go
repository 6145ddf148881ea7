// Package cache provides the read-path cache used by the load and
// booking services.  It replaces implicit cache-by-interception with
// an explicit component injected into the services: callers Get/Set
// serialized entities by key and Invalidate on every mutation.  The
// cache is an optimization only — every implementation may miss at
// any time and correctness must hold with the Noop implementation.
package cache

import (
    "context"
    "time"
)

// Cache stores serialized values under string keys within a single
// namespace (prefix).  Get returns ok=false on a miss; errors from
// the backing store are treated as misses by callers so that a cache
// outage never fails a read.
type Cache interface {
    // Get returns the cached bytes for key, or ok=false on a miss.
    Get(ctx context.Context, key string) (value []byte, ok bool)
    // Set stores value under key for the configured TTL.
    Set(ctx context.Context, key string, value []byte)
    // Invalidate removes a single key.
    Invalidate(ctx context.Context, key string)
    // InvalidateAll removes every key in the namespace.  Used after
    // mutations that change list results ("all", filtered queries).
    InvalidateAll(ctx context.Context)
}

// KeyAll is the conventional key under which full list results are
// cached.
const KeyAll = "all"

// Noop is a Cache that stores nothing.  Services run with it when
// caching is disabled or Redis is unreachable, and tests use it to
// validate correctness independent of caching.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }
func (Noop) Set(context.Context, string, []byte)        {}
func (Noop) Invalidate(context.Context, string)         {}
func (Noop) InvalidateAll(context.Context)              {}

// entry is a value with its expiry, used by Memory.
type entry struct {
    value   []byte
    expires time.Time
}
