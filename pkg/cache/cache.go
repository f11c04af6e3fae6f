package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrMiss is returned by Get when the key is absent or the backend is down.
var ErrMiss = fmt.Errorf("cache: miss")

// Capability is an injectable TTL cache. The TTL is fixed at construction so
// no call site can smuggle in its own expiry policy.
type Capability interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Put(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context, keys ...string) error
	IsAvailable() bool
}

type redisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// New creates a Redis-backed cache capability. A nil client yields a cache
// that misses on every Get and ignores writes, so callers need no nil checks.
func New(client *redis.Client, prefix string, ttl time.Duration) Capability {
	return &redisCache{client: client, prefix: prefix, ttl: ttl}
}

func (c *redisCache) key(k string) string {
	return c.prefix + k
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Get 캐시에서 값 조회
func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return ErrMiss
	}

	data, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		return ErrMiss
	}

	return json.Unmarshal(data, dest)
}

// Put 캐시에 값 저장
func (c *redisCache) Put(ctx context.Context, key string, value interface{}) error {
	if c.client == nil {
		return nil // Redis 없으면 무시
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, c.key(key), data, c.ttl).Err()
}

// Invalidate 캐시 삭제
func (c *redisCache) Invalidate(ctx context.Context, keys ...string) error {
	if c.client == nil || len(keys) == 0 {
		return nil
	}
	prefixed := make([]string, len(keys))
	for i, k := range keys {
		prefixed[i] = c.key(k)
	}
	return c.client.Del(ctx, prefixed...).Err()
}
