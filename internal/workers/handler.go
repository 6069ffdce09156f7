package workers

import (
	"context"

	"page-cache/internal/models"
)

// Refresher re-fetches a URL and rewrites its cache entry.
type Refresher interface {
	Refresh(ctx context.Context, url string) (*models.Result, error)
}
