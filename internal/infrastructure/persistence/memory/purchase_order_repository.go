package memory

import (
	"context"
	"sync"

	"backoffice/internal/domain/purchase"
)

type PurchaseOrderRepository struct {
	mu     sync.RWMutex
	orders []purchase.PurchaseOrder
}

func NewPurchaseOrderRepository() *PurchaseOrderRepository {
	return &PurchaseOrderRepository{}
}

func (r *PurchaseOrderRepository) Save(ctx context.Context, po *purchase.PurchaseOrder) error {
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
	r.orders = append([]purchase.PurchaseOrder{*po}, r.orders...)
	return nil
}

func (r *PurchaseOrderRepository) List(ctx context.Context) ([]purchase.PurchaseOrder, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]purchase.PurchaseOrder, len(r.orders))
	copy(out, r.orders)
	return out, nil
}
