// Package cache provides an optional Redis-backed cache for normalized
// flight search results. When Redis is not configured the no-op
// implementation is used and every lookup misses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/travel-search/travel-search-aggregation-service/internal/domain"
)

// Cache stores normalized flight results keyed by search parameters.
type Cache interface {
	Get(ctx context.Context, params domain.SearchParams) ([]domain.FlightOffer, bool)
	Set(ctx context.Context, params domain.SearchParams, offers []domain.FlightOffer) error
	Close() error
}

// DefaultTTL is how long cached search results stay fresh.
const DefaultTTL = 5 * time.Minute

// RedisCache is a Redis-backed Cache.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to Redis at addr and verifies the connection.
func NewRedisCache(addr, password string, ttl time.Duration) (*RedisCache, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Get returns the cached offers for the given search, if present.
func (c *RedisCache) Get(ctx context.Context, params domain.SearchParams) ([]domain.FlightOffer, bool) {
	data, err := c.client.Get(ctx, cacheKey(params)).Bytes()
	if err != nil {
		return nil, false
	}

	var offers []domain.FlightOffer
	if err := json.Unmarshal(data, &offers); err != nil {
		return nil, false
	}
	return offers, true
}

// Set stores the offers for the given search.
func (c *RedisCache) Set(ctx context.Context, params domain.SearchParams, offers []domain.FlightOffer) error {
	data, err := json.Marshal(offers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(params), data, c.ttl).Err()
}

// Close releases the Redis connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// NoOpCache is a Cache that stores nothing. Used when Redis is not configured.
type NoOpCache struct{}

// NewNoOpCache creates a NoOpCache.
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always misses.
func (*NoOpCache) Get(context.Context, domain.SearchParams) ([]domain.FlightOffer, bool) {
	return nil, false
}

// Set discards the offers.
func (*NoOpCache) Set(context.Context, domain.SearchParams, []domain.FlightOffer) error {
	return nil
}

// Close is a no-op.
func (*NoOpCache) Close() error {
	return nil
}

// cacheKey derives a stable key from the fields that affect results.
func cacheKey(params domain.SearchParams) string {
	data, _ := json.Marshal(params)
	sum := sha256.Sum256(data)
	return "flightsearch:" + hex.EncodeToString(sum[:])
}
