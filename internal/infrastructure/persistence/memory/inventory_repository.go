package memory

import (
	"context"
	"sync"

	"backoffice/internal/domain/inventory"
)

type InventoryRepository struct {
	mu    sync.RWMutex
	items []inventory.Item
}

func NewInventoryRepository() *InventoryRepository {
	return &InventoryRepository{}
}

func (r *InventoryRepository) Insert(ctx context.Context, item *inventory.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.indexLocked(item.SKU) >= 0 {
		return inventory.ErrDuplicateSKU
	}
	r.items = append([]inventory.Item{*item}, r.items...)
	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, sku string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if i := r.indexLocked(sku); i >= 0 {
		r.items = append(r.items[:i], r.items[i+1:]...)
	}
	return nil
}

func (r *InventoryRepository) FindBySKU(ctx context.Context, sku string) (*inventory.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexLocked(sku)
	if i < 0 {
		return nil, nil
	}
	found := r.items[i]
	return &found, nil
}

func (r *InventoryRepository) List(ctx context.Context) ([]inventory.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]inventory.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InventoryRepository) AdjustStock(ctx context.Context, sku string, delta int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexLocked(sku)
	if i < 0 {
		return inventory.ErrNotFound
	}
	if r.items[i].Stock+delta < 0 {
		return inventory.ErrInsufficientStock
	}
	r.items[i].Stock += delta
	return nil
}

func (r *InventoryRepository) indexLocked(sku string) int {
	for i := range r.items {
		if r.items[i].SKU == sku {
			return i
		}
	}
	return -1
}
