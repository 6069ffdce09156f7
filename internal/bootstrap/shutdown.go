package bootstrap

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"page-cache/internal/kafka"
	"page-cache/internal/logger"
	"page-cache/internal/store"
)

// GracefulShutdown waits for SIGINT/SIGTERM and then runs Shutdown. The returned
// channel is closed once everything has stopped.
func GracefulShutdown(srv *http.Server, s store.Store, kafkaBundle *kafka.KafkaBundle, cancel context.CancelFunc) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig

		logger.Infof("Shutting down gracefully...")
		Shutdown(srv, s, kafkaBundle, cancel)
	}()
	return done
}

// Shutdown drains in-flight requests first, then stops workers, Kafka and the store,
// which those requests still depend on.
func Shutdown(srv *http.Server, s store.Store, kafkaBundle *kafka.KafkaBundle, cancel context.CancelFunc) {
	ctx, cancelTimeout := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelTimeout()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown error: %v", err)
	}

	if cancel != nil {
		cancel()
	}

	kafkaBundle.Close()

	if s != nil {
		if err := s.Close(); err != nil {
			logger.Warnf("Redis close error: %v", err)
		}
	}
}
