package rdx

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is a thin JSON cache over Redis. A nil Cache (or one whose Redis
// is unreachable) degrades to cache misses; callers never fail a request
// because the cache is down.
type Cache struct {
	conn *redis.Client
}

func New(addr, password string) *Cache {
	return &Cache{conn: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})}
}

// Get unmarshals the cached value for key into dst. Returns false on miss
// or any Redis/decode failure.
func (c *Cache) Get(ctx context.Context, key string, dst any) bool {
	if c == nil || c.conn == nil {
		return false
	}
	raw, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(raw), dst) == nil
}

// Set stores v as JSON under key with the given TTL. Errors are swallowed.
func (c *Cache) Set(ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil || c.conn == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.conn.Set(ctx, key, data, ttl)
}

// Del drops keys, typically on writes that invalidate cached listings.
func (c *Cache) Del(ctx context.Context, keys ...string) {
	if c == nil || c.conn == nil {
		return
	}
	c.conn.Del(ctx, keys...)
}

func (c *Cache) Close() error {
	if c == nil || c.conn == nil {
		return nil
	}
	return c.conn.Close()
}
