package cache

import (
	"context"
	"errors"
	"time"

	"swiftprints/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const (
	// Cached order status: order_status:{order_id} -> status string.
	KeyOrderStatus = "order_status:%s"

	// Channel carrying order status change events.
	ChannelOrderStatus = "orders:status"
)

var TTLStatusCache = 5 * time.Minute

func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}

// RedisCache adapts a go-redis client to the cache port. A missing key
// reads as (nil, nil).

type RedisCache struct {
	rdb *redis.Client
}

var _ interfaces.ICache = (*RedisCache)(nil)

func NewRedisCache(rdb *redis.Client) *RedisCache {
	return &RedisCache{rdb: rdb}
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
