package repository

import (
	"context"

	"backoffice/internal/domain/order"
)

// OrderRepository stores sales orders. List returns the most recently
// inserted order first; saving an existing ID replaces it in place.
type OrderRepository interface {
	Save(ctx context.Context, order *order.Order) error
	FindByID(ctx context.Context, id string) (*order.Order, error)
	List(ctx context.Context) ([]order.Order, error)
}
