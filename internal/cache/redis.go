package cache

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys one SCAN iteration may touch.
const scanBatchSize = 1000

type Redis struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedis(client *redis.Client, logger *slog.Logger) *Redis {
	return &Redis{
		client: client,
		logger: logger.With("component", "cache"),
	}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Invalidate walks the keyspace with SCAN in bounded batches and deletes
// matches. Eviction is best-effort; stale entries expire by TTL anyway.
func (r *Redis) Invalidate(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			r.logger.Error("cache scan failed", "pattern", pattern, "error", err)
			return nil
		}

		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				r.logger.Error("cache delete failed", "pattern", pattern, "error", err)
				return nil
			}
		}

		cursor = next
		if cursor == 0 {
			return nil
		}
	}
}
