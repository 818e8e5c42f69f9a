package kafka

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/twmb/franz-go/pkg/kgo"

	"backoffice/internal/config"
	"backoffice/pkg/logger"
)

type OrderProducer struct {
	client *kgo.Client
	topic  string
	logger logger.Logger
}

func NewOrderProducer(cfg config.KafkaConfig, log logger.Logger) (*OrderProducer, error) {
	log = log.WithFields(logger.String("component", "kafka_producer"), logger.String("topic", cfg.OrderTopic))
	log.Info("connecting to brokers", logger.Any("brokers", cfg.Brokers))

	client, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.DefaultProduceTopic(cfg.OrderTopic),
		kgo.RequiredAcks(kgo.AllISRAcks()),
		kgo.DisableIdempotentWrite(),
	)
	if err != nil {
		return nil, fmt.Errorf("create kafka producer: %w", err)
	}

	return &OrderProducer{
		client: client,
		topic:  cfg.OrderTopic,
		logger: log,
	}, nil
}

// PublishOrder writes payload keyed by the order id so every event for one
// order lands on the same partition. An empty key gets a random one.
func (p *OrderProducer) PublishOrder(ctx context.Context, key string, payload []byte) error {
	if len(payload) == 0 {
		return fmt.Errorf("payload is empty")
	}
	if key == "" {
		key = uuid.NewString()
	}

	rec := &kgo.Record{
		Topic:     p.topic,
		Key:       []byte(key),
		Value:     payload,
		Timestamp: time.Now().UTC(),
	}

	if err := p.client.ProduceSync(ctx, rec).FirstErr(); err != nil {
		p.logger.Error("failed to publish order",
			logger.String("key", key),
			logger.Int("payload_bytes", len(payload)),
			logger.Error(err),
		)
		return fmt.Errorf("publish to kafka topic %s: %w", p.topic, err)
	}

	p.logger.Debug("order published", logger.String("key", key))
	return nil
}

func (p *OrderProducer) Close(ctx context.Context) error {
	p.logger.Info("Closing Kafka producer")
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
