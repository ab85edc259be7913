package cache

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// PayloadCache stores opaque upstream payloads (the news feed) under a fixed
// key with a TTL, so repeated proxy hits do not hammer the third party.
type PayloadCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewPayloadCache(client *redisv9.Client, ttl time.Duration) *PayloadCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &PayloadCache{client: client, ttl: ttl}
}

func (c *PayloadCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	raw, err := c.client.Get(ctx, c.fullKey(key)).Bytes()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get payload failed: %w", err)
	}
	return raw, true, nil
}

func (c *PayloadCache) Set(ctx context.Context, key string, payload []byte) error {
	if err := c.client.Set(ctx, c.fullKey(key), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set payload failed: %w", err)
	}
	return nil
}

func (c *PayloadCache) fullKey(key string) string {
	return "proxy:payload:" + key
}
