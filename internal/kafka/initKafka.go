package kafka

import (
	"page-cache/internal/config"
	"page-cache/internal/logger"
)

type KafkaBundle struct {
	EventsProducer  *Producer
	RefreshConsumer *Consumer
}

// InitKafka returns nil when Kafka is disabled.
func InitKafka(cfg *config.Config) (*KafkaBundle, error) {
	if !cfg.KafkaEnabled {
		logger.Infof("Kafka disabled")
		return nil, nil
	}

	producer, err := NewProducer(cfg.KafkaBrokers, cfg.EventsTopic)
	if err != nil {
		return nil, err
	}
	consumer, err := NewConsumer(cfg.KafkaBrokers, cfg.RefreshTopic, cfg.RefreshGroup)
	if err != nil {
		producer.Close()
		return nil, err
	}

	return &KafkaBundle{
		EventsProducer:  producer,
		RefreshConsumer: consumer,
	}, nil
}

// Publisher returns the events producer, or nil when the bundle is nil.
func (b *KafkaBundle) Publisher() ProducerInterface {
	if b == nil || b.EventsProducer == nil {
		return nil
	}
	return b.EventsProducer
}

func (b *KafkaBundle) Close() {
	if b == nil {
		return
	}
	if b.RefreshConsumer != nil {
		b.RefreshConsumer.Stop()
	}
	if b.EventsProducer != nil {
		b.EventsProducer.Close()
	}
}
