package utils

import (
	"context"
	"log"
	"time"

	"wayfare/config"

	"github.com/go-redis/redis/v8"
)

var (
	// CacheClient backs the itinerary fingerprint cache and resolved media
	// results. Pipeline cache failures are non-fatal, but a missing Redis at
	// startup is a deployment error.
	CacheClient *redis.Client
)

// InitCache initializes the Redis cache client.
func InitCache() {
	CacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCacheDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := CacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Cache): %v", err)
	}
}

// GetCacheClient returns the cache client.
func GetCacheClient() *redis.Client {
	if CacheClient == nil {
		InitCache()
	}
	return CacheClient
}
