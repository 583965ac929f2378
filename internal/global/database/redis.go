package database

import (
	"context"
	"fmt"
	"time"

	"glowup-diaries/config"
	"glowup-diaries/tools"

	"github.com/redis/go-redis/v9"
)

// Redis holds the session store client.
var Redis *redis.Client

func InitRedis() {
	cfg := config.Get().Redis
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     100,
		MinIdleConns: 10,
		MaxRetries:   3,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	tools.PanicOnErr(client.Ping(ctx).Err())

	Redis = client
}

// RedisHealthCheck pings the session store.
func RedisHealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	if err := Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis health check failed: %w", err)
	}
	return nil
}
