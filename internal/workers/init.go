package workers

import (
	"context"

	"page-cache/internal/kafka"
	"page-cache/internal/logger"
)

type WorkerBundle struct {
	RefreshWorker *RefreshWorker
}

// StartAllWorkers feeds the refresh consumer into a RefreshWorker. It does nothing
// when Kafka is disabled.
func StartAllWorkers(ctx context.Context, refresher Refresher, kafkaBundle *kafka.KafkaBundle) *WorkerBundle {
	if kafkaBundle == nil || kafkaBundle.RefreshConsumer == nil {
		return &WorkerBundle{}
	}

	refreshCh := make(chan []byte, 100)
	kafkaBundle.RefreshConsumer.Start(enqueue(ctx, refreshCh))

	refreshWorker := NewRefreshWorker(refreshCh, refresher)
	go refreshWorker.Start(ctx)

	return &WorkerBundle{RefreshWorker: refreshWorker}
}

// enqueue blocks the consumer's poll loop while the queue is full, so commands are
// never dropped.
func enqueue(ctx context.Context, ch chan<- []byte) func(key, value []byte) {
	return func(key, value []byte) {
		select {
		case ch <- value:
		case <-ctx.Done():
			logger.Warnf("RefreshWorker stopped, not queueing key=%s", string(key))
		}
	}
}
