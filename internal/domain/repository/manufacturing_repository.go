package repository

import (
	"context"

	"backoffice/internal/domain/manufacturing"
)

type ProductionOrderRepository interface {
	Save(ctx context.Context, po *manufacturing.ProductionOrder) error
	List(ctx context.Context) ([]manufacturing.ProductionOrder, error)
}

type RawMaterialRepository interface {
	Save(ctx context.Context, m *manufacturing.RawMaterial) error
	List(ctx context.Context) ([]manufacturing.RawMaterial, error)
}
