package main

import (
	"context"
	"errors"
	"net/http"

	"page-cache/internal/bootstrap"
	"page-cache/internal/config"
	"page-cache/internal/kafka"
	"page-cache/internal/logger"
	"page-cache/internal/store"
	"page-cache/internal/workers"
)

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	redisStore, err := store.Connect(ctx, cfg)
	if err != nil {
		logger.Fatalf("%v", err)
	}
	logger.Infof("Redis connected successfully")

	kafkaBundle, err := kafka.InitKafka(cfg)
	if err != nil {
		logger.Fatalf("Kafka init failed: %v", err)
	}

	bundle := bootstrap.InitBootstrap(redisStore, nil, kafkaBundle)
	workers.StartAllWorkers(ctx, bundle.CachedFetcher, kafkaBundle)

	router := bootstrap.InitRoutes(bundle.PageHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	stopped := bootstrap.GracefulShutdown(srv, redisStore, kafkaBundle, cancel)

	logger.Infof("Server started on :%s", cfg.Port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatalf("%v", err)
	}
	<-stopped
	logger.Infof("Server stopped")
}
