package kafka

import (
	"context"
	"errors"
	"fmt"

	kafkago "github.com/segmentio/kafka-go"

	"backoffice/internal/config"
	"backoffice/pkg/logger"
)

// Handler consumes one message value.
type Handler func(ctx context.Context, payload []byte) error

// MessageReader is the subset of *kafkago.Reader the consumer needs.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

type OrderConsumer struct {
	reader  MessageReader
	handler Handler
	logger  logger.Logger
}

func NewOrderConsumer(cfg config.KafkaConfig, handler Handler, log logger.Logger) *OrderConsumer {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:  cfg.Brokers,
		GroupID:  cfg.ConsumerGroup,
		Topic:    cfg.OrderTopic,
		MinBytes: 1e3,
		MaxBytes: 1e6,
	})
	return newOrderConsumer(reader, handler, log.WithFields(
		logger.String("component", "kafka_consumer"),
		logger.String("topic", cfg.OrderTopic),
	))
}

func newOrderConsumer(reader MessageReader, handler Handler, log logger.Logger) *OrderConsumer {
	return &OrderConsumer{reader: reader, handler: handler, logger: log}
}

// Start reads until ctx is cancelled. A message the handler rejects is
// logged and committed so one bad record cannot stall the group.
func (c *OrderConsumer) Start(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return fmt.Errorf("fetch message: %w", err)
		}

		if err := c.handler(ctx, msg.Value); err != nil {
			c.logger.Error("failed to handle order message",
				logger.String("key", string(msg.Key)),
				logger.Int("partition", msg.Partition),
				logger.Int64("offset", msg.Offset),
				logger.Error(err),
			)
		}

		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("commit offset %d: %w", msg.Offset, err)
		}
	}
}

func (c *OrderConsumer) Close() {
	if err := c.reader.Close(); err != nil {
		c.logger.Warn("close reader", logger.Error(err))
	}
}
