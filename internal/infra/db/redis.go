package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/habit-tracker/backend/config"
)

// RedisConnection wraps the Redis client used by the key-value storage driver.
type RedisConnection struct {
	client *redis.Client
}

// NewRedisConnection creates a new Redis connection from the configured URL.
func NewRedisConnection(cfg *config.RedisConfig) (*RedisConnection, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis URL: %w", err)
	}
	if cfg.Password != "" {
		opts.Password = cfg.Password
	}
	if cfg.DB != 0 {
		opts.DB = cfg.DB
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	slog.Info("Redis connection established", "db", opts.DB)

	return &RedisConnection{client: client}, nil
}

// Client returns the underlying Redis client.
func (r *RedisConnection) Client() *redis.Client {
	return r.client
}

// HealthCheck performs a health check on the Redis connection.
func (r *RedisConnection) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := r.client.Ping(ctx).Err(); err != nil {
		slog.Error("Redis health check failed", "error", err)
		return false
	}
	return true
}

// Close closes the Redis connection.
func (r *RedisConnection) Close() error {
	if err := r.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis connection: %w", err)
	}

	slog.Info("Redis connection closed")
	return nil
}
