package cache

import (
    "context"
    "log"
    "time"

    "github.com/redis/go-redis/v9"
)

// Redis implements Cache on a Redis server.  Keys are namespaced with
// the configured prefix so the load and booking services can share
// one Redis database without colliding.  All failures are logged and
// degraded to misses/no-ops; a Redis outage must never surface to the
// request path.
type Redis struct {
    rdb    *redis.Client
    prefix string
    ttl    time.Duration
}

// NewRedis returns a Redis cache with the given namespace prefix and
// entry TTL.
func NewRedis(rdb *redis.Client, prefix string, ttl time.Duration) *Redis {
    return &Redis{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (r *Redis) key(k string) string { return r.prefix + ":" + k }

// Get returns the cached bytes for key, treating every error as a miss.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool) {
    v, err := r.rdb.Get(ctx, r.key(key)).Bytes()
    if err == redis.Nil {
        return nil, false
    }
    if err != nil {
        log.Printf("cache: get %s failed: %v", key, err)
        return nil, false
    }
    return v, true
}

// Set stores value under key for the configured TTL.
func (r *Redis) Set(ctx context.Context, key string, value []byte) {
    if err := r.rdb.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
        log.Printf("cache: set %s failed: %v", key, err)
    }
}

// Invalidate removes a single key.
func (r *Redis) Invalidate(ctx context.Context, key string) {
    if err := r.rdb.Del(ctx, r.key(key)).Err(); err != nil {
        log.Printf("cache: invalidate %s failed: %v", key, err)
    }
}

// InvalidateAll removes every key in the namespace by scanning for
// the prefix.  SCAN keeps the operation incremental so a large
// namespace does not block Redis.
func (r *Redis) InvalidateAll(ctx context.Context) {
    var cursor uint64
    pattern := r.prefix + ":*"
    for {
        keys, next, err := r.rdb.Scan(ctx, cursor, pattern, 100).Result()
        if err != nil {
            log.Printf("cache: scan %s failed: %v", pattern, err)
            return
        }
        if len(keys) > 0 {
            if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
                log.Printf("cache: flush %s failed: %v", pattern, err)
                return
            }
        }
        cursor = next
        if cursor == 0 {
            return
        }
    }
}
