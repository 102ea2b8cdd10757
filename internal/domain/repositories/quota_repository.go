package repositories

import (
	"context"
	"time"
)

// CounterStore keeps integer counters that expire
type CounterStore interface {
	// IncrBy adds n to key, setting ttl when the key is created, and returns the new value
	IncrBy(ctx context.Context, key string, n int64, ttl time.Duration) (int64, error)

	// Count returns the current value of key, 0 when absent
	Count(ctx context.Context, key string) (int64, error)
}
