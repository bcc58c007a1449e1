package redis

import (
	"context"
	"encoding/json"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const statsCacheKey = "stats:public"

// StatsCache caches the public stats payload, which is assembled from
// several tables and served on every landing-page load.
type StatsCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewStatsCache(client *goredis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{
		client: client,
		ttl:    ttl,
	}
}

// Get retrieves the cached stats payload into dest. Returns false on a
// cache miss.
func (c *StatsCache) Get(ctx context.Context, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, statsCacheKey).Result()
	if err == goredis.Nil {
		return false, nil // Cache miss
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set stores the stats payload with the configured TTL.
func (c *StatsCache) Set(ctx context.Context, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, statsCacheKey, data, c.ttl).Err()
}

// Invalidate drops the cached payload. Called after admin writes to any
// table the payload aggregates.
func (c *StatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsCacheKey).Err()
}
