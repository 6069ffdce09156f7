package bootstrap

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"page-cache/internal/services"
	"page-cache/internal/store"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoutes_EndToEnd(t *testing.T) {
	var upstreamHits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamHits.Add(1)
		w.Write([]byte("hello"))
	}))
	defer upstream.Close()

	mr := miniredis.RunT(t)
	s := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))

	bundle := InitBootstrap(s, nil, nil)
	srv := httptest.NewServer(InitRoutes(bundle.PageHandler))
	defer srv.Close()
	defer s.Close()

	page := srv.URL + "/page?url=" + url.QueryEscape(upstream.URL+"/a")

	for i, want := range []string{"MISS", "HIT"} {
		resp, err := http.Get(page)
		require.NoError(t, err)
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode, "call %d", i)
		assert.Equal(t, "hello", string(body))
		assert.Equal(t, want, resp.Header.Get("X-Cache"))
	}
	assert.Equal(t, int32(1), upstreamHits.Load())

	stats, err := bundle.CachedFetcher.Stats(context.Background(), upstream.URL+"/a")
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Count)
	assert.True(t, stats.Cached)

	resp, err := http.Get(srv.URL + "/page/stats?url=" + url.QueryEscape(upstream.URL+"/a"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRoutes_UpstreamFailureIsBadGateway(t *testing.T) {
	mr := miniredis.RunT(t)
	s := store.NewRedisStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	defer s.Close()

	raw := services.FetcherFunc(func(ctx context.Context, u string) (string, error) {
		return "", &services.FetchError{URL: u, StatusCode: 500, Cause: services.CauseStatus}
	})
	srv := httptest.NewServer(InitRoutes(InitBootstrap(s, raw, nil).PageHandler))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/page?url=http://x.test/b")
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.False(t, mr.Exists("result:http://x.test/b"))
	v, err := mr.Get("count:http://x.test/b")
	require.NoError(t, err)
	assert.Equal(t, "1", v)
}

func TestRoutes_Health(t *testing.T) {
	srv := httptest.NewServer(InitRoutes(nil))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "OK", string(body))
}
