package manufacturing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "backoffice/internal/domain/manufacturing"
	"backoffice/internal/domain/query"
	"backoffice/internal/domain/repository"
	"backoffice/pkg/logger"
)

var ErrIDExhausted = errors.New("no free manufacturing id left")

type CreateOrderCommand struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type AddMaterialCommand struct {
	Name    string `json:"name"`
	Stock   string `json:"stock"`
	Reorder int    `json:"reorder"`
}

// OrderFilter narrows ListOrders. Search matches the product.
type OrderFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type MaterialFilter struct {
	Search string `form:"search"`
}

type Service struct {
	orders    repository.ProductionOrderRepository
	materials repository.RawMaterialRepository
	log       logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(
	orders repository.ProductionOrderRepository,
	materials repository.RawMaterialRepository,
	seed int64,
	log logger.Logger,
) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		orders:    orders,
		materials: materials,
		log:       log.WithFields(logger.String("component", "manufacturing")),
		rnd:       rand.New(rand.NewSource(seed)),
	}
}

// Seed stores the opening production orders and raw materials. Each
// collection is seeded only while it is empty.
func (s *Service) Seed(ctx context.Context) error {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return fmt.Errorf("list production orders: %w", err)
	}
	if len(orders) == 0 {
		seed := seedOrders()
		for i := len(seed) - 1; i >= 0; i-- {
			if err := s.orders.Save(ctx, &seed[i]); err != nil {
				return fmt.Errorf("seed production order %s: %w", seed[i].ID, err)
			}
		}
	}

	materials, err := s.materials.List(ctx)
	if err != nil {
		return fmt.Errorf("list raw materials: %w", err)
	}
	if len(materials) == 0 {
		seed := seedMaterials()
		for i := len(seed) - 1; i >= 0; i-- {
			if err := s.materials.Save(ctx, &seed[i]); err != nil {
				return fmt.Errorf("seed raw material %s: %w", seed[i].ID, err)
			}
		}
	}
	return nil
}

// CreateOrder plans a new production order. It is listed first.
func (s *Service) CreateOrder(ctx context.Context, cmd CreateOrderCommand) (*domain.ProductionOrder, error) {
	existing, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	used := make(map[string]struct{}, len(existing))
	for _, po := range existing {
		used[po.ID] = struct{}{}
	}

	id, err := s.nextID("PROD-%d", 100, 999, used)
	if err != nil {
		return nil, err
	}

	po, err := domain.NewProductionOrder(id, cmd.Product, cmd.Quantity)
	if err != nil {
		return nil, err
	}
	if err := s.orders.Save(ctx, po); err != nil {
		return nil, fmt.Errorf("save production order: %w", err)
	}

	s.log.WithContext(ctx).Info("production order created",
		logger.String("id", po.ID),
		logger.String("product", po.Product),
		logger.Int("quantity", po.Quantity),
	)
	return po, nil
}

// AddMaterial registers a raw material. It is listed first.
func (s *Service) AddMaterial(ctx context.Context, cmd AddMaterialCommand) (*domain.RawMaterial, error) {
	existing, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	used := make(map[string]struct{}, len(existing))
	for _, m := range existing {
		used[m.ID] = struct{}{}
	}

	id, err := s.nextID("MAT-%02d", 10, 99, used)
	if err != nil {
		return nil, err
	}

	m, err := domain.NewRawMaterial(id, cmd.Name, cmd.Stock, cmd.Reorder)
	if err != nil {
		return nil, err
	}
	if err := s.materials.Save(ctx, m); err != nil {
		return nil, fmt.Errorf("save raw material: %w", err)
	}

	s.log.WithContext(ctx).Info("raw material added",
		logger.String("id", m.ID),
		logger.String("name", m.Name),
		logger.Bool("needs_reorder", m.NeedsReorder()),
	)
	return m, nil
}

// nextID draws ids in [lo, hi] at random, then scans, and fails only when
// the range is full.
func (s *Service) nextID(format string, lo, hi int, used map[string]struct{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 50; attempt++ {
		id := fmt.Sprintf(format, s.rnd.Intn(hi-lo+1)+lo)
		if _, taken := used[id]; !taken {
			return id, nil
		}
	}
	for n := lo; n <= hi; n++ {
		id := fmt.Sprintf(format, n)
		if _, taken := used[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *Service) ListOrders(ctx context.Context, f OrderFilter) ([]domain.ProductionOrder, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list production orders: %w", err)
	}
	return query.Filter(orders,
		query.Contains(func(po domain.ProductionOrder) string { return po.Product }, f.Search),
		query.Equals(func(po domain.ProductionOrder) string { return string(po.Status) }, f.Status),
	), nil
}

func (s *Service) ListMaterials(ctx context.Context, f MaterialFilter) ([]domain.RawMaterial, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	return query.Filter(materials,
		query.Contains(func(m domain.RawMaterial) string { return m.Name }, f.Search),
	), nil
}

// ReorderAlerts lists materials at or below their own reorder level.
func (s *Service) ReorderAlerts(ctx context.Context) ([]domain.RawMaterial, error) {
	materials, err := s.materials.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list raw materials: %w", err)
	}
	return query.Filter(materials, domain.RawMaterial.NeedsReorder), nil
}

func seedOrders() []domain.ProductionOrder {
	return []domain.ProductionOrder{
		{ID: "PROD-101", Product: "فستان سهرة اسود", Quantity: 50, Status: domain.StatusInProgress, Cost: decimal.NewFromInt(12500)},
		{ID: "PROD-102", Product: "بلوزة حرير وردي", Quantity: 120, Status: domain.StatusCompleted, Cost: decimal.NewFromInt(18000)},
		{ID: "PROD-103", Product: "تنورة بيضاء", Quantity: 75, Status: domain.StatusPlanning, Cost: decimal.NewFromInt(9375)},
	}
}

func seedMaterials() []domain.RawMaterial {
	return []domain.RawMaterial{
		{ID: "MAT-01", Name: "قماش ساتان اسود", Stock: "250 متر", Reorder: 50},
		{ID: "MAT-02", Name: "قماش حرير وردي", Stock: "80 متر", Reorder: 30},
		{ID: "MAT-03", Name: "أزرار ذهبية", Stock: "1500 قطعة", Reorder: 500},
		{ID: "MAT-04", Name: "سحابات مخفية", Stock: "450 قطعة", Reorder: 100},
	}
}
