// Package memory keeps repositories in process memory. Each list is stored
// newest first; all methods are safe for concurrent use.
package memory

import (
	"context"
	"sync"

	"backoffice/internal/domain/order"
)

type OrderRepository struct {
	mu     sync.RWMutex
	orders []order.Order
}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

// Save prepends a new order or replaces an existing one in place.
func (r *OrderRepository) Save(ctx context.Context, o *order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == o.ID {
			r.orders[i] = *o
			return nil
		}
	}
	r.orders = append([]order.Order{*o}, r.orders...)
	return nil
}

func (r *OrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			found := o
			return &found, nil
		}
	}
	return nil, nil
}

func (r *OrderRepository) List(ctx context.Context) ([]order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]order.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
