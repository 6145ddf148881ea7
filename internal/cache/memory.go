package cache

import (
    "context"
    "sync"
    "time"
)

// Memory is a process-local Cache guarded by a mutex.  It is used by
// tests to observe invalidation behavior and can serve a single-node
// deployment where Redis is not available.
type Memory struct {
    mu  sync.Mutex
    m   map[string]entry
    ttl time.Duration
}

// NewMemory returns an empty in-memory cache with the given TTL.
func NewMemory(ttl time.Duration) *Memory {
    return &Memory{m: make(map[string]entry), ttl: ttl}
}

func (c *Memory) Get(_ context.Context, key string) ([]byte, bool) {
    c.mu.Lock()
    defer c.mu.Unlock()
    e, ok := c.m[key]
    if !ok || time.Now().After(e.expires) {
        delete(c.m, key)
        return nil, false
    }
    return e.value, true
}

func (c *Memory) Set(_ context.Context, key string, value []byte) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.m[key] = entry{value: value, expires: time.Now().Add(c.ttl)}
}

func (c *Memory) Invalidate(_ context.Context, key string) {
    c.mu.Lock()
    defer c.mu.Unlock()
    delete(c.m, key)
}

func (c *Memory) InvalidateAll(_ context.Context) {
    c.mu.Lock()
    defer c.mu.Unlock()
    c.m = make(map[string]entry)
}

// Len reports the number of live entries; used by tests.
func (c *Memory) Len() int {
    c.mu.Lock()
    defer c.mu.Unlock()
    return len(c.m)
}
