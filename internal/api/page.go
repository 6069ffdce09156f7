package api

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"page-cache/internal/services"
)

const RequestTimeout = 10 * time.Second

type PageClient struct {
	http *http.Client
}

// NewPageClient returns a client with RequestTimeout. A nil client gets a default one.
func NewPageClient(client *http.Client) *PageClient {
	if client == nil {
		client = &http.Client{Timeout: RequestTimeout}
	}
	return &PageClient{http: client}
}

// Fetch GETs url and returns the body as text. Any non-2xx answer is a failure.
func (c *PageClient) Fetch(ctx context.Context, url string) (string, error) {
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", &services.FetchError{URL: url, Cause: services.CauseInvalidURL}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &services.FetchError{URL: url, Cause: services.CauseInvalidURL, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", &services.FetchError{URL: url, Cause: services.CauseNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return "", &services.FetchError{URL: url, StatusCode: resp.StatusCode, Cause: services.CauseStatus}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &services.FetchError{URL: url, Cause: services.CauseReadBody, Err: err}
	}
	return string(body), nil
}
