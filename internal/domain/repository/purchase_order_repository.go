package repository

import (
	"context"

	"backoffice/internal/domain/purchase"
)

type PurchaseOrderRepository interface {
	Save(ctx context.Context, po *purchase.PurchaseOrder) error
	List(ctx context.Context) ([]purchase.PurchaseOrder, error)
}
