// internal/ratelimit/redis.go
package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisLimiter implements the same rolling window on a Redis sorted set so
// several server processes can share one budget per client. Still
// approximate: the trim-count-add sequence is pipelined, not transactional.
type RedisLimiter struct {
	client *redis.Client
	cap    int
	window time.Duration
	now    Clock
}

func NewRedisLimiter(client *redis.Client, cap int, window time.Duration) *RedisLimiter {
	return NewRedisLimiterWithClock(client, cap, window, time.Now)
}

func NewRedisLimiterWithClock(client *redis.Client, cap int, window time.Duration, now Clock) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		cap:    cap,
		window: window,
		now:    now,
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, clientKey string) (bool, error) {
	key := "ratelimit:" + clientKey
	now := l.now()
	cutoff := now.Add(-l.window)

	if err := l.client.ZRemRangeByScore(ctx, key,
		"-inf", fmt.Sprintf("%d", cutoff.UnixNano())).Err(); err != nil {
		return false, fmt.Errorf("rate limit trim failed: %w", err)
	}

	count, err := l.client.ZCard(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("rate limit count failed: %w", err)
	}
	if count >= int64(l.cap) {
		return false, nil
	}

	member := fmt.Sprintf("%d", now.UnixNano())
	if err := l.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: member,
	}).Err(); err != nil {
		return false, fmt.Errorf("rate limit record failed: %w", err)
	}
	l.client.Expire(ctx, key, l.window)

	return true, nil
}
