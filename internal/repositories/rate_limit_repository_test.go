package repository

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/aaravmahajanofficial/storefront/internal/config"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitTest(maxAttempts int64, window time.Duration, now time.Time) (*redisRateLimitRepository, redismock.ClientMock) {
	client, mock := redismock.NewClientMock()
	repo := &redisRateLimitRepository{
		client: client,
		cfg:    &config.RateConfig{MaxAttempts: maxAttempts, WindowSize: window},
		now:    func() time.Time { return now },
	}
	return repo, mock
}

func expectAttempt(mock redismock.ClientMock, key string, now time.Time, window time.Duration) {
	windowStart := now.UnixMilli() - window.Milliseconds()
	mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(windowStart, 10)).SetVal(0)
	mock.ExpectZAdd(key, redis.Z{Score: float64(now.UnixMilli()), Member: strconv.FormatInt(now.UnixNano(), 10)}).SetVal(1)
}

func TestCheckCheckoutRateLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 10, 1, 12, 0, 0, 0, time.UTC)
	window := time.Minute
	key := checkoutAttemptsKey("sess-1")

	t.Run("Success - Within Limit", func(t *testing.T) {
		// Arrange
		repo, mock := setupRateLimitTest(5, window, now)
		expectAttempt(mock, key, now, window)
		mock.ExpectZCard(key).SetVal(2)
		mock.ExpectExpire(key, window).SetVal(true)

		// Act
		allowed, remaining, retryAfter, err := repo.CheckCheckoutRateLimit(ctx, "sess-1")

		// Assert
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 3, remaining)
		assert.Equal(t, 0, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Last Allowed Attempt", func(t *testing.T) {
		repo, mock := setupRateLimitTest(5, window, now)
		expectAttempt(mock, key, now, window)
		mock.ExpectZCard(key).SetVal(5)
		mock.ExpectExpire(key, window).SetVal(true)

		allowed, remaining, _, err := repo.CheckCheckoutRateLimit(ctx, "sess-1")

		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Limit Exceeded", func(t *testing.T) {
		// Arrange
		repo, mock := setupRateLimitTest(5, window, now)
		expectAttempt(mock, key, now, window)
		mock.ExpectZCard(key).SetVal(6)
		mock.ExpectExpire(key, window).SetVal(true)
		oldest := now.Add(-45 * time.Second).UnixMilli()
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{{Score: float64(oldest), Member: "x"}})

		// Act
		allowed, remaining, retryAfter, err := repo.CheckCheckoutRateLimit(ctx, "sess-1")

		// Assert
		require.NoError(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 0, remaining)
		assert.Equal(t, 15, retryAfter)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Oldest Attempt Missing", func(t *testing.T) {
		repo, mock := setupRateLimitTest(5, window, now)
		expectAttempt(mock, key, now, window)
		mock.ExpectZCard(key).SetVal(6)
		mock.ExpectExpire(key, window).SetVal(true)
		mock.ExpectZRangeWithScores(key, 0, 0).SetVal([]redis.Z{})

		allowed, _, retryAfter, err := repo.CheckCheckoutRateLimit(ctx, "sess-1")

		require.Error(t, err)
		assert.False(t, allowed)
		assert.Equal(t, 60, retryAfter)
		assert.Equal(t, "failed to get oldest attempt time: no attempts recorded", err.Error())
		assert.NotContains(t, err.Error(), "%!w")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Pipeline Error", func(t *testing.T) {
		repo, mock := setupRateLimitTest(5, window, now)
		mock.ExpectZRemRangeByScore(key, "0", strconv.FormatInt(now.UnixMilli()-window.Milliseconds(), 10)).
			SetErr(errors.New("connection refused"))

		allowed, _, _, err := repo.CheckCheckoutRateLimit(ctx, "sess-1")

		require.Error(t, err)
		assert.False(t, allowed)
		assert.Contains(t, err.Error(), "redis pipeline error")
	})
}
