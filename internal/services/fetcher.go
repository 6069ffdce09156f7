package services

import "context"

// Fetcher returns the raw body of a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type FetcherFunc func(ctx context.Context, url string) (string, error)

func (f FetcherFunc) Fetch(ctx context.Context, url string) (string, error) { return f(ctx, url) }
