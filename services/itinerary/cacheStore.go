package itinerary

import (
	"context"
	"encoding/json"
	"time"

	"wayfare/models"

	"github.com/go-redis/redis/v8"
)

const itineraryCachePrefix = "itinerary:fp:"

// DefaultCacheTTL bounds how long a finished itinerary may be served for an
// identical request. There is no invalidation path other than expiry.
const DefaultCacheTTL = time.Hour

// RedisItineraryCache stores finished itineraries as JSON under the request
// fingerprint.
type RedisItineraryCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisItineraryCache(client *redis.Client, ttl time.Duration) *RedisItineraryCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &RedisItineraryCache{client: client, ttl: ttl}
}

func (c *RedisItineraryCache) Get(ctx context.Context, fingerprint string) (*models.Itinerary, error) {
	data, err := c.client.Get(ctx, itineraryCachePrefix+fingerprint).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var it models.Itinerary
	if err := json.Unmarshal([]byte(data), &it); err != nil {
		return nil, err
	}
	return &it, nil
}

func (c *RedisItineraryCache) Set(ctx context.Context, fingerprint string, it *models.Itinerary) error {
	b, err := json.Marshal(it)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, itineraryCachePrefix+fingerprint, b, c.ttl).Err()
}
