package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"page-cache/internal/logger"

	"github.com/twmb/franz-go/pkg/kgo"
)

type ProducerInterface interface {
	PublishObjectAsync(key []byte, obj interface{})
}

type Producer struct {
	topic  string
	client *kgo.Client
}

func NewProducer(brokers []string, topic string, extra ...kgo.Opt) (*Producer, error) {
	opts := append([]kgo.Opt{kgo.SeedBrokers(brokers...)}, extra...)

	client, err := kgo.NewClient(opts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	logger.Infof("Kafka producer initialized for topic: %s", topic)
	return &Producer{topic: topic, client: client}, nil
}

func (p *Producer) Close() {
	p.client.Close()
}

func (p *Producer) Publish(key, value []byte) error {
	msg := &kgo.Record{
		Topic: p.topic,
		Key:   key,
		Value: value,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	for _, r := range p.client.ProduceSync(ctx, msg) {
		if r.Err != nil {
			return fmt.Errorf("kafka publish to %s: %w", p.topic, r.Err)
		}
	}

	logger.Debugf("Published to %s: key=%s", p.topic, string(key))
	return nil
}

func (p *Producer) PublishObjectAsync(key []byte, obj interface{}) {
	go func() {
		value, err := json.Marshal(obj)
		if err != nil {
			logger.Errorf("Failed to marshal object for Kafka: %v", err)
			return
		}

		if err := p.Publish(key, value); err != nil {
			logger.Warnf("Kafka async publish error: %v", err)
		}
	}()
}
