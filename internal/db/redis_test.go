package db

import (
	"context"
	"testing"

	"page-cache/internal/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisOptions_HostPortDefaults(t *testing.T) {
	opt, err := RedisOptions(&config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "localhost:6379", opt.Addr)
}

func TestRedisOptions_URLWins(t *testing.T) {
	opt, err := RedisOptions(&config.Config{
		RedisURL:  "redis://cache.internal:6380/3",
		RedisHost: "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, "cache.internal:6380", opt.Addr)
	assert.Equal(t, 3, opt.DB)
}

func TestRedisOptions_BadURL(t *testing.T) {
	_, err := RedisOptions(&config.Config{RedisURL: "http://nope"})
	assert.Error(t, err)
}

func TestConnectRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := ConnectRedis(context.Background(), &config.Config{
		RedisHost: mr.Host(),
		RedisPort: mr.Port(),
	})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnectRedis_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := ConnectRedis(context.Background(), &config.Config{RedisURL: "redis://" + addr})
	assert.Error(t, err)
}
