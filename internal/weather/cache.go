// README: Redis-backed forecast cache; a nil cache is a valid no-op.
package weather

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"voyago/internal/logger"
)

const cacheKeyPrefix = "weather:"

// Cache stores rendered forecast text per place with a TTL. It is an
// optimization only: every failure path degrades to a cache miss.
type Cache struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{redis: client, ttl: ttl}
}

func (c *Cache) Get(ctx context.Context, place string) (string, bool) {
	if c == nil || c.redis == nil {
		return "", false
	}
	val, err := c.redis.Get(ctx, cacheKey(place)).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		logger.Log.WithError(err).Debug("Forecast cache read failed")
		return "", false
	}
	return val, true
}

func (c *Cache) Set(ctx context.Context, place, text string) {
	if c == nil || c.redis == nil {
		return
	}
	if err := c.redis.Set(ctx, cacheKey(place), text, c.ttl).Err(); err != nil {
		logger.Log.WithError(err).Debug("Forecast cache write failed")
	}
}

func cacheKey(place string) string {
	return cacheKeyPrefix + strings.ToLower(place)
}
