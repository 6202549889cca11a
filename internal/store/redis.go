// internal/store/redis.go
//
// Redis implementation of the KV interface.
// Values are stored as-is (the caller serializes game state to JSON) with
// an optional TTL for automatic cleanup of stale instances.

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV implements KV on top of a Redis client.
type RedisKV struct {
	client *redis.Client
	ttl    time.Duration // 0 = no expiration
}

// NewRedis connects to Redis and verifies the connection with a ping.
func NewRedis(addr, password string, db int, ttl time.Duration) (*RedisKV, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connect to redis: %w", err)
	}

	return &RedisKV{client: client, ttl: ttl}, nil
}

// Get retrieves the value for key, mapping redis.Nil to ErrNotFound.
func (s *RedisKV) Get(ctx context.Context, key string) (string, error) {
	v, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, nil
}

// Set persists value under key with the configured TTL.
func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, key, value, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}
