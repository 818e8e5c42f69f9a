package memory

import (
	"context"
	"sync"

	"backoffice/internal/domain/manufacturing"
)

// ProductionOrderRepository lists newest first; Save on a known id replaces
// in place.
type ProductionOrderRepository struct {
	mu     sync.RWMutex
	orders []manufacturing.ProductionOrder
}

func NewProductionOrderRepository() *ProductionOrderRepository {
	return &ProductionOrderRepository{}
}

func (r *ProductionOrderRepository) Save(ctx context.Context, po *manufacturing.ProductionOrder) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.orders {
		if r.orders[i].ID == po.ID {
			r.orders[i] = *po
			return nil
		}
	}
	r.orders = append([]manufacturing.ProductionOrder{*po}, r.orders...)
	return nil
}

func (r *ProductionOrderRepository) List(ctx context.Context) ([]manufacturing.ProductionOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]manufacturing.ProductionOrder, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

type RawMaterialRepository struct {
	mu        sync.RWMutex
	materials []manufacturing.RawMaterial
}

func NewRawMaterialRepository() *RawMaterialRepository {
	return &RawMaterialRepository{}
}

func (r *RawMaterialRepository) Save(ctx context.Context, m *manufacturing.RawMaterial) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.materials {
		if r.materials[i].ID == m.ID {
			r.materials[i] = *m
			return nil
		}
	}
	r.materials = append([]manufacturing.RawMaterial{*m}, r.materials...)
	return nil
}

func (r *RawMaterialRepository) List(ctx context.Context) ([]manufacturing.RawMaterial, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]manufacturing.RawMaterial, len(r.materials))
	copy(out, r.materials)
	return out, nil
}
