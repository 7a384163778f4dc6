package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/redis/go-redis/v9"
)

type RateLimitRepository interface {
	CheckCheckoutRateLimit(ctx context.Context, sessionID string) (bool, int, int, error)
}

type redisRateLimitRepository struct {
	client *redis.Client
	cfg    *config.RateConfig
	now    func() time.Time
}

func NewRateLimitRepo(client *redis.Client, cfg *config.RateConfig) RateLimitRepository {
	return &redisRateLimitRepository{client: client, cfg: cfg, now: time.Now}
}

func checkoutAttemptsKey(sessionID string) string {
	return "checkout_attempts:" + sessionID
}

// Returns isAllowed, attempts left, seconds to wait, error
func (r *redisRateLimitRepository) CheckCheckoutRateLimit(ctx context.Context, sessionID string) (bool, int, int, error) {

	key := checkoutAttemptsKey(sessionID)

	now := r.now()
	nowMillis := now.UnixMilli()

	// only attempts after windowStart are counted
	windowStart := nowMillis - r.cfg.WindowSize.Milliseconds()

	pipe := r.client.Pipeline()

	// drop attempts that left the window
	pipe.ZRemRangeByScore(ctx, key, "0", strconv.FormatInt(windowStart, 10))

	// record this attempt; the nanosecond member keeps same-millisecond attempts distinct
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(nowMillis), Member: strconv.FormatInt(now.UnixNano(), 10)})

	// attempts currently in the window
	count := pipe.ZCard(ctx, key)

	pipe.Expire(ctx, key, r.cfg.WindowSize)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, 0, fmt.Errorf("redis pipeline error for rate limit check: %w", err)
	}

	attempts := count.Val()
	remaining := r.cfg.MaxAttempts - attempts

	if attempts > r.cfg.MaxAttempts {

		scores, err := r.client.ZRangeWithScores(ctx, key, 0, 0).Result()
		if err != nil {
			return false, 0, int(r.cfg.WindowSize.Seconds()), fmt.Errorf("failed to get oldest attempt time: %w", err)
		}
		if len(scores) == 0 {
			return false, 0, int(r.cfg.WindowSize.Seconds()), errors.New("failed to get oldest attempt time: no attempts recorded")
		}

		oldestMillis := int64(scores[0].Score)
		retryAfterMillis := max(oldestMillis+r.cfg.WindowSize.Milliseconds()-nowMillis, 0)

		// round up so clients never retry early
		return false, 0, int((retryAfterMillis + 999) / 1000), nil
	}

	return true, int(remaining), 0, nil
}
