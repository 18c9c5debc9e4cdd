package cache

import (
	"context"
	"fmt"

	"github.com/recruitly/talentflow/internal/config"
	"github.com/redis/go-redis/v9"
)

// Connect builds the redis client backing the interview cache and
// verifies connectivity. The client is returned even when the ping
// fails, so the caller can keep it wired and let reads fall back to the
// database until redis comes back.
func Connect(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := c.Ping(ctx).Err(); err != nil {
		return c, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return c, nil
}
