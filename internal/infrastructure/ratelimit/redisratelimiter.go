package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisRateLimiter keeps one sorted set per key and window, scored by request
// time. Instances sharing Redis share the budget.
type RedisRateLimiter struct {
	client  *redis.Client
	windows []Window
	seq     atomic.Uint64
}

// NewRedisRateLimiter ignores windows with a non-positive limit or period.
func NewRedisRateLimiter(client *redis.Client, windows ...Window) *RedisRateLimiter {
	active := make([]Window, 0, len(windows))
	for _, w := range windows {
		if w.Limit > 0 && w.Period > 0 {
			active = append(active, w)
		}
	}
	return &RedisRateLimiter{
		client:  client,
		windows: active,
	}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := time.Now()
	for _, w := range l.windows {
		allowed, err := l.checkWindow(ctx, key, w, now)
		if err != nil {
			return false, err
		}
		if !allowed {
			return false, nil
		}
	}
	return true, nil
}

func (l *RedisRateLimiter) checkWindow(ctx context.Context, key string, w Window, now time.Time) (bool, error) {
	redisKey := l.key(key, w.Period)
	windowStart := now.Add(-w.Period).UnixNano()
	nowNano := now.UnixNano()
	member := strconv.FormatInt(nowNano, 10) + "-" + strconv.FormatUint(l.seq.Add(1), 10)

	pipe := l.client.Pipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "0", strconv.FormatInt(windowStart, 10))
	zcard := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{Score: float64(nowNano), Member: member})
	pipe.Expire(ctx, redisKey, w.Period+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("failed to execute rate limit pipeline: %w", err)
	}

	return zcard.Val() < int64(w.Limit), nil
}

// Reset forgets every recorded request of key.
func (l *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	keys := make([]string, 0, len(l.windows))
	for _, w := range l.windows {
		keys = append(keys, l.key(key, w.Period))
	}
	if len(keys) == 0 {
		return nil
	}
	if err := l.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to reset rate limit for %s: %w", key, err)
	}
	return nil
}

func (l *RedisRateLimiter) key(identifier string, period time.Duration) string {
	return fmt.Sprintf("ratelimit:%s:%s", identifier, period.String())
}
