package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// LogoutCache caches per-admin last-logout timestamps so token verification
// avoids a database round trip on every authenticated request.
// Key format: logout:<username> → unix seconds, expiring with the token TTL
// (older tokens are expired anyway, so the entry is no longer needed).
type LogoutCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewLogoutCache creates a LogoutCache wrapping the given Redis client.
func NewLogoutCache(client *redis.Client, ttl time.Duration) *LogoutCache {
	return &LogoutCache{client: client, ttl: ttl}
}

// LastLogout returns the cached timestamp and whether the lookup hit.
func (c *LogoutCache) LastLogout(ctx context.Context, username string) (time.Time, bool, error) {
	val, err := c.client.Get(ctx, c.key(username)).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("logout cache get: %w", err)
	}

	unix, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("logout cache parse: %w", err)
	}
	return time.Unix(unix, 0).UTC(), true, nil
}

// SetLastLogout records the timestamp (expires with the configured TTL).
func (c *LogoutCache) SetLastLogout(ctx context.Context, username string, at time.Time) error {
	return c.client.Set(ctx, c.key(username), strconv.FormatInt(at.Unix(), 10), c.ttl).Err()
}

func (c *LogoutCache) key(username string) string {
	return "logout:" + username
}
