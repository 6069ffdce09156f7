package bootstrap

import (
	"page-cache/internal/api"
	"page-cache/internal/handlers"
	"page-cache/internal/kafka"
	"page-cache/internal/services"
	"page-cache/internal/store"
)

type BootstrapBundle struct {
	PageHandler   *handlers.PageHandler
	CachedFetcher *services.CachedFetcher
}

// InitBootstrap builds the service graph. kafkaBundle may be nil.
func InitBootstrap(s store.Store, raw services.Fetcher, kafkaBundle *kafka.KafkaBundle) *BootstrapBundle {
	if raw == nil {
		raw = api.NewPageClient(nil)
	}

	fetcher := services.NewCachedFetcher(s, raw, kafkaBundle.Publisher())
	return &BootstrapBundle{
		PageHandler:   handlers.NewPageHandler(fetcher),
		CachedFetcher: fetcher,
	}
}
