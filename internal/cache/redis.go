package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/oggyb/swipe-match/internal/config"
	"github.com/oggyb/swipe-match/internal/metrics"
)

// RedisCache keeps derived "liked you" counters. Every call goes through a
// circuit breaker so a dead Redis costs one fast error instead of a dial
// timeout per request.
type RedisCache struct {
	Client  *redis.Client
	ttl     time.Duration
	breaker *gobreaker.CircuitBreaker[any]
}

// NewRedisCache initializes Redis client from config.
// Only Addr is mandatory, Password/DB are optional.
func NewRedisCache(cfg *config.Config) *RedisCache {
	opts := &redis.Options{
		Addr: cfg.Redis.Addr,
	}
	if cfg.Redis.Password != "" {
		opts.Password = cfg.Redis.Password
	}
	if cfg.Redis.DB != 0 {
		opts.DB = cfg.Redis.DB
	}
	ttl := cfg.Redis.LikeCountTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &RedisCache{
		Client:  redis.NewClient(opts),
		ttl:     ttl,
		breaker: newBreaker(cfg.Redis.BreakerFailures, cfg.Redis.BreakerTimeout),
	}
}

func newBreaker(failures int, timeout time.Duration) *gobreaker.CircuitBreaker[any] {
	if failures < 1 {
		failures = 5
	}
	return gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
		Name:        "redis",
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= uint32(failures)
		},
		// a miss or a caller giving up says nothing about Redis health
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, redis.Nil) ||
				errors.Is(err, context.Canceled)
		},
		OnStateChange: func(_ string, _, to gobreaker.State) {
			metrics.CacheBreakerState.Set(float64(to))
		},
	})
}

// BreakerState reports the circuit breaker state.
func (c *RedisCache) BreakerState() gobreaker.State {
	return c.breaker.State()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.Client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.Client.Close()
}

// KeyForLikeCount generates Redis key for a profile's like count
func (c *RedisCache) KeyForLikeCount(profileID string) string {
	return fmt.Sprintf("likes:count:%s", profileID)
}

// SetLikeCount stores the authoritative count and refreshes the TTL.
func (c *RedisCache) SetLikeCount(ctx context.Context, profileID string, count int64) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.Client.Set(ctx, c.KeyForLikeCount(profileID), count, c.ttl).Err()
	})
	return err
}

// GetLikeCount returns the cached count. ok is false on a cache miss.
// A hit refreshes the TTL since the profile is active.
func (c *RedisCache) GetLikeCount(ctx context.Context, profileID string) (count int64, ok bool, err error) {
	key := c.KeyForLikeCount(profileID)
	res, err := c.breaker.Execute(func() (any, error) {
		return c.Client.Get(ctx, key).Result()
	})
	if errors.Is(err, redis.Nil) {
		return 0, false, nil // cache miss
	} else if err != nil {
		return 0, false, err
	}
	n, err := strconv.ParseInt(res.(string), 10, 64)
	if err != nil {
		return 0, false, nil // garbage counts as a miss
	}
	_ = c.Client.Expire(ctx, key, c.ttl).Err()
	return n, true, nil
}

// adjustScript changes a counter only if it is already cached, so a miss
// never turns into a partial count. The counter never drops below zero.
var adjustScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
  return -1
end
local n = redis.call("INCRBY", KEYS[1], ARGV[1])
if n < 0 then
  redis.call("SET", KEYS[1], "0")
  n = 0
end
redis.call("PEXPIRE", KEYS[1], ARGV[2])
return n
`)

// AdjustLikeCount adds delta to a cached count. It returns false when the
// count was not cached, in which case nothing is written.
func (c *RedisCache) AdjustLikeCount(ctx context.Context, profileID string, delta int64) (bool, error) {
	if delta == 0 {
		return false, nil
	}
	res, err := c.breaker.Execute(func() (any, error) {
		return adjustScript.Run(ctx, c.Client,
			[]string{c.KeyForLikeCount(profileID)},
			delta, c.ttl.Milliseconds(),
		).Int64()
	})
	if err != nil {
		return false, err
	}
	return res.(int64) >= 0, nil
}

// InvalidateLikeCount drops a cached count.
func (c *RedisCache) InvalidateLikeCount(ctx context.Context, profileID string) error {
	_, err := c.breaker.Execute(func() (any, error) {
		return nil, c.Client.Del(ctx, c.KeyForLikeCount(profileID)).Err()
	})
	return err
}
