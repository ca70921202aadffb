package cache_utils

import (
	"context"
	"encoding/json"
	"time"

	"taskhive/internal/cache"

	"github.com/valkey-io/valkey-go"
)

const (
	cacheCallTimeout = 10 * time.Second
	cacheEntryExpiry = 10 * time.Minute
)

// CacheUtil is a typed JSON cache on top of valkey. All operations are
// best effort: a cache failure degrades to a miss, never to an error,
// so callers treat the cache as optional.
type CacheUtil[T any] struct {
	client valkey.Client
	prefix string
}

func NewCacheUtil[T any](client valkey.Client, prefix string) *CacheUtil[T] {
	return &CacheUtil[T]{client: client, prefix: prefix}
}

// Get returns the cached item or nil on a miss (or any cache error).
func (c *CacheUtil[T]) Get(key string) *T {
	ctx, cancel := c.callContext()
	defer cancel()

	data, err := c.client.Do(ctx, c.client.B().Get().Key(c.prefix+key).Build()).AsBytes()
	if err != nil {
		return nil
	}

	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		return nil
	}

	return &item
}

func (c *CacheUtil[T]) Set(key string, item *T) {
	data, err := json.Marshal(item)
	if err != nil {
		return
	}

	ctx, cancel := c.callContext()
	defer cancel()

	c.client.Do(ctx, c.client.B().Set().
		Key(c.prefix+key).
		Value(string(data)).
		Ex(cacheEntryExpiry).
		Build())
}

func (c *CacheUtil[T]) Invalidate(key string) {
	ctx, cancel := c.callContext()
	defer cancel()

	c.client.Do(ctx, c.client.B().Del().Key(c.prefix+key).Build())
}

func (c *CacheUtil[T]) callContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cacheCallTimeout)
}

// TestCacheConnection verifies valkey is reachable on startup with a
// set/get/del round trip. Panics so a misconfigured cache fails fast.
func TestCacheConnection() {
	probe := NewCacheUtil[string](cache.GetCache(), "th_probe:")

	value := "pong"
	probe.Set("startup", &value)

	if got := probe.Get("startup"); got == nil || *got != value {
		panic("valkey connection test failed: set/get round trip did not match")
	}

	probe.Invalidate("startup")
}
