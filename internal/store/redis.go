package store

import (
	"context"
	"errors"
	"time"

	"page-cache/internal/config"
	"page-cache/internal/db"

	"github.com/redis/go-redis/v9"
)

type RedisStore struct {
	redis *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{redis: client}
}

// Connect dials Redis using cfg and returns a ready store.
func Connect(ctx context.Context, cfg *config.Config) (*RedisStore, error) {
	client, err := db.ConnectRedis(ctx, cfg)
	if err != nil {
		return nil, &StoreError{Op: "connect", Err: err}
	}
	return NewRedisStore(client), nil
}

func (s *RedisStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := s.redis.Incr(ctx, key).Result()
	if err != nil {
		return 0, &StoreError{Op: "incr", Key: key, Err: err}
	}
	return n, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StoreError{Op: "get", Key: key, Err: err}
	}
	return v, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if err := s.redis.Set(ctx, key, value, 0).Err(); err != nil {
		return &StoreError{Op: "set", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) SetEx(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := s.redis.SetEx(ctx, key, value, ttl).Err(); err != nil {
		return &StoreError{Op: "setex", Key: key, Err: err}
	}
	return nil
}

func (s *RedisStore) TTL(ctx context.Context, key string) (time.Duration, error) {
	d, err := s.redis.PTTL(ctx, key).Result()
	if err != nil {
		return 0, &StoreError{Op: "ttl", Key: key, Err: err}
	}
	// -1 (no expiry) and -2 (absent) both come back as negative durations.
	if d < 0 {
		return 0, nil
	}
	return d, nil
}

func (s *RedisStore) Close() error {
	if s == nil || s.redis == nil {
		return nil
	}
	return s.redis.Close()
}
