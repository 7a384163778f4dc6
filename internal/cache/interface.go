package cache

import (
	"context"
	"time"
)

type Cache interface {
	Get(ctx context.Context, key string, value any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

func Key(prefix string, id string) string {
	return prefix + ":" + id
}

const (
	OrderKeyPrefix = "order"
)

// OrderKey scopes an order confirmation to the session that placed it.
func OrderKey(sessionID, orderID string) string {
	return Key(OrderKeyPrefix, sessionID+":"+orderID)
}
