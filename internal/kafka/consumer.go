package kafka

import (
	"context"
	"errors"
	"fmt"

	"page-cache/internal/logger"

	"github.com/twmb/franz-go/pkg/kgo"
)

type Consumer struct {
	client *kgo.Client
	topic  string
	cancel context.CancelFunc
	done   chan struct{}
}

func NewConsumer(brokers []string, topic, group string, extra ...kgo.Opt) (*Consumer, error) {
	opts := append([]kgo.Opt{
		kgo.SeedBrokers(brokers...),
		kgo.ConsumeTopics(topic),
		kgo.ConsumerGroup(group),
		kgo.ConsumeResetOffset(kgo.NewOffset().AtStart()),
	}, extra...)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka consumer: %w", err)
	}

	logger.Infof("Kafka consumer initialized for topic: %s, group: %s", topic, group)
	return &Consumer{client: client, topic: topic, done: make(chan struct{})}, nil
}

// Start polls in a goroutine and calls handler for every record until Stop.
func (c *Consumer) Start(handler func(key, value []byte)) {
	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel

	go func() {
		defer close(c.done)
		for {
			fetches := c.client.PollFetches(ctx)
			if ctx.Err() != nil {
				return
			}
			for _, fe := range fetches.Errors() {
				if !errors.Is(fe.Err, context.Canceled) {
					logger.Warnf("Kafka fetch error %s/%d: %v", fe.Topic, fe.Partition, fe.Err)
				}
			}
			iter := fetches.RecordIter()
			for !iter.Done() {
				record := iter.Next()
				handler(record.Key, record.Value)
			}
		}
	}()
}

func (c *Consumer) Stop() {
	if c.cancel != nil {
		c.cancel()
		<-c.done
	}
	c.client.Close()
}
