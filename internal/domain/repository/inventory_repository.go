package repository

import (
	"context"

	"backoffice/internal/domain/inventory"
)

// InventoryRepository holds the authoritative stock records.
//
// Insert fails with inventory.ErrDuplicateSKU for a known SKU. Delete of an
// unknown SKU is a no-op. FindBySKU returns nil, nil when absent.
// AdjustStock fails with inventory.ErrInsufficientStock rather than letting
// stock drop below zero, and with inventory.ErrNotFound for an unknown SKU.
// List returns the most recently inserted item first.
type InventoryRepository interface {
	Insert(ctx context.Context, item *inventory.Item) error
	Delete(ctx context.Context, sku string) error
	FindBySKU(ctx context.Context, sku string) (*inventory.Item, error)
	List(ctx context.Context) ([]inventory.Item, error)
	AdjustStock(ctx context.Context, sku string, delta int) error
}
