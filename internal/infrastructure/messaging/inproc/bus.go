// Package inproc delivers published order payloads to local subscribers
// synchronously. It stands in for Kafka when no broker is configured.
package inproc

import (
	"context"
	"fmt"
	"sync"

	"backoffice/pkg/logger"
)

// Handler consumes one payload.
type Handler func(ctx context.Context, payload []byte) error

type Bus struct {
	mu       sync.RWMutex
	handlers []Handler
	log      logger.Logger
}

func NewBus(log logger.Logger) *Bus {
	return &Bus{log: log.WithFields(logger.String("component", "inproc_bus"))}
}

func (b *Bus) Subscribe(h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, h)
}

// PublishOrder hands payload to every subscriber in subscription order and
// stops at the first failure.
func (b *Bus) PublishOrder(ctx context.Context, key string, payload []byte) error {
	b.mu.RLock()
	handlers := make([]Handler, len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.RUnlock()

	if len(handlers) == 0 {
		b.log.Warn("order published with no subscriber", logger.String("key", key))
		return nil
	}
	for i, h := range handlers {
		if err := h(ctx, payload); err != nil {
			return fmt.Errorf("deliver %s to subscriber #%d: %w", key, i, err)
		}
	}
	return nil
}
