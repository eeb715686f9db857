package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const adminCacheTTL = 5 * time.Minute

// AdminCache is a read-through cache for dynamic admin membership.
// Key format: admin:<user_id>, value "1"/"0", expiring after adminCacheTTL
// so revocations propagate without an invalidation channel.
type AdminCache struct {
	client *redis.Client
}

// NewAdminCache creates an AdminCache wrapping the given Redis client.
func NewAdminCache(client *redis.Client) *AdminCache {
	return &AdminCache{client: client}
}

// Get returns the cached decision and whether one was present.
func (c *AdminCache) Get(ctx context.Context, userID int64) (bool, bool, error) {
	val, err := c.client.Get(ctx, c.key(userID)).Result()
	if err == redis.Nil {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("admin cache get: %w", err)
	}
	return val == "1", true, nil
}

// Set records the decision for the TTL window.
func (c *AdminCache) Set(ctx context.Context, userID int64, isAdmin bool) error {
	val := "0"
	if isAdmin {
		val = "1"
	}
	return c.client.Set(ctx, c.key(userID), val, adminCacheTTL).Err()
}

func (c *AdminCache) key(userID int64) string {
	return fmt.Sprintf("admin:%d", userID)
}
