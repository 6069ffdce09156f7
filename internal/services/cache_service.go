package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"page-cache/internal/logger"
	"page-cache/internal/models"
	"page-cache/internal/store"
)

// ResultTTL is how long a fetched body stays in the cache.
const ResultTTL = 10 * time.Second

func CountKey(url string) string  { return "count:" + url }
func ResultKey(url string) string { return "result:" + url }

// Publisher receives an event after each fresh fetch. Publishing must not block.
type Publisher interface {
	PublishObjectAsync(key []byte, obj interface{})
}

// CachedFetcher counts requests per URL and serves bodies from the store while
// they are fresh. There is no per-URL locking: concurrent misses all fetch and the
// last write wins.
type CachedFetcher struct {
	store     store.Store
	fetcher   Fetcher
	publisher Publisher
	now       func() time.Time
}

// NewCachedFetcher wires the cache. publisher may be nil.
func NewCachedFetcher(s store.Store, fetcher Fetcher, publisher Publisher) *CachedFetcher {
	return &CachedFetcher{
		store:     s,
		fetcher:   fetcher,
		publisher: publisher,
		now:       time.Now,
	}
}

func (c *CachedFetcher) Fetch(ctx context.Context, url string) (*models.Result, error) {
	if _, err := c.store.Incr(ctx, CountKey(url)); err != nil {
		return nil, err
	}

	body, found, err := c.store.Get(ctx, ResultKey(url))
	if err != nil {
		return nil, err
	}
	if found {
		logger.Debugf("Cache HIT: %s", url)
		return &models.Result{URL: url, Body: body, Source: models.SourceCache}, nil
	}

	logger.Debugf("Cache MISS: %s", url)
	return c.refresh(ctx, url)
}

// Refresh fetches url and rewrites its cache entry without counting a request.
func (c *CachedFetcher) Refresh(ctx context.Context, url string) (*models.Result, error) {
	return c.refresh(ctx, url)
}

func (c *CachedFetcher) refresh(ctx context.Context, url string) (*models.Result, error) {
	body, err := c.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, asFetchError(url, err)
	}

	// The counter tracks requests since the last fresh fetch.
	if err := c.store.Set(ctx, CountKey(url), "0"); err != nil {
		return nil, fmt.Errorf("reset counter: %w", err)
	}
	if err := c.store.SetEx(ctx, ResultKey(url), body, ResultTTL); err != nil {
		return nil, fmt.Errorf("cache result: %w", err)
	}

	if c.publisher != nil {
		c.publisher.PublishObjectAsync([]byte(url), models.PageEvent{
			URL:       url,
			Bytes:     len(body),
			Source:    models.SourceFresh,
			FetchedAt: c.now().UTC(),
		})
	}

	return &models.Result{URL: url, Body: body, Source: models.SourceFresh}, nil
}

// Stats reads the counter and cache state for url without modifying either.
func (c *CachedFetcher) Stats(ctx context.Context, url string) (*models.PageStats, error) {
	stats := &models.PageStats{URL: url}

	raw, found, err := c.store.Get(ctx, CountKey(url))
	if err != nil {
		return nil, err
	}
	if found {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("counter %q is not an integer: %w", raw, err)
		}
		stats.Count = n
	}

	// Results are always written with an expiry, so a positive TTL means cached.
	ttl, err := c.store.TTL(ctx, ResultKey(url))
	if err != nil {
		return nil, err
	}
	stats.Cached = ttl > 0
	stats.TTLSeconds = ttl.Seconds()
	return stats, nil
}
