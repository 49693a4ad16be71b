package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitedesk/sitedesk/internal/shared/config"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
)

const defaultSiteCodeTTL = time.Hour

// SiteCodeCache maps external site codes to internal ids in Redis. Sites are
// immutable, so entries only expire and are never invalidated.
type SiteCodeCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSiteCodeCache(client *redis.Client, ttl time.Duration) *SiteCodeCache {
	if ttl <= 0 {
		ttl = defaultSiteCodeTTL
	}
	return &SiteCodeCache{client: client, ttl: ttl}
}

func (c *SiteCodeCache) key(code string) string {
	return constants.SiteCodeCachePrefix + code
}

// Get reports found=false on a cache miss.
func (c *SiteCodeCache) Get(ctx context.Context, code string) (uint, bool, error) {
	raw, err := c.client.Get(ctx, c.key(code)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to read site code cache: %w", err)
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		// corrupt entry; drop it and fall back to the database
		_ = c.client.Del(ctx, c.key(code)).Err()
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (c *SiteCodeCache) Set(ctx context.Context, code string, id uint) error {
	if err := c.client.Set(ctx, c.key(code), strconv.FormatUint(uint64(id), 10), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write site code cache: %w", err)
	}
	return nil
}

// NewRedisClient connects to Redis and verifies the connection.
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.GetAddr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.GetAddr(), err)
	}
	return client, nil
}
