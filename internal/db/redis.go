package db

import (
	"context"
	"fmt"
	"net"
	"time"

	"page-cache/internal/config"

	"github.com/redis/go-redis/v9"
)

// RedisOptions builds client options from REDIS_URL, or from host and port when no
// URL is configured.
func RedisOptions(cfg *config.Config) (*redis.Options, error) {
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("invalid Redis URL: %w", err)
		}
		return opt, nil
	}
	host, port := cfg.RedisHost, cfg.RedisPort
	if host == "" {
		host = "localhost"
	}
	if port == "" {
		port = "6379"
	}
	return &redis.Options{Addr: net.JoinHostPort(host, port)}, nil
}

// ConnectRedis opens a client and pings it once.
func ConnectRedis(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	opt, err := RedisOptions(cfg)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed (%s): %w", opt.Addr, err)
	}
	return client, nil
}
