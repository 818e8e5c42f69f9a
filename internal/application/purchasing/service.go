package purchasing

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	domain "backoffice/internal/domain/purchase"
	"backoffice/internal/domain/query"
	"backoffice/internal/domain/repository"
	"backoffice/pkg/logger"
)

var ErrIDExhausted = errors.New("no free purchase order id for this year")

type CreateCommand struct {
	Supplier string          `json:"supplier"`
	Total    decimal.Decimal `json:"total"`
}

// Filter narrows List. Search matches the supplier; Status accepts the
// match-all sentinels.
type Filter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

type Service struct {
	repo repository.PurchaseOrderRepository
	log  logger.Logger
	now  func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewService(repo repository.PurchaseOrderRepository, seed int64, log logger.Logger) *Service {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Service{
		repo: repo,
		log:  log.WithFields(logger.String("component", "purchasing")),
		now:  time.Now,
		rnd:  rand.New(rand.NewSource(seed)),
	}
}

// Seed stores the opening purchase orders when the repository is empty.
func (s *Service) Seed(ctx context.Context) error {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list purchase orders: %w", err)
	}
	if len(existing) > 0 {
		return nil
	}

	seed := seedOrders()
	for i := len(seed) - 1; i >= 0; i-- {
		if err := s.repo.Save(ctx, &seed[i]); err != nil {
			return fmt.Errorf("seed purchase order %s: %w", seed[i].ID, err)
		}
	}
	return nil
}

// Create places a new in-progress order dated today. It is listed first.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*domain.PurchaseOrder, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}

	now := s.now()
	id, err := s.nextID(now.Year(), existing)
	if err != nil {
		return nil, err
	}

	po, err := domain.NewPurchaseOrder(id, cmd.Supplier, now, cmd.Total)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(ctx, po); err != nil {
		return nil, fmt.Errorf("save purchase order: %w", err)
	}

	s.log.WithContext(ctx).Info("purchase order created",
		logger.String("id", po.ID),
		logger.String("supplier", po.Supplier),
		logger.String("total", po.Total.StringFixed(2)),
	)
	return po, nil
}

// nextID draws PO-<year>-<100..999> until it finds one not in use.
func (s *Service) nextID(year int, existing []domain.PurchaseOrder) (string, error) {
	used := make(map[string]struct{}, len(existing))
	for _, po := range existing {
		used[po.ID] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for attempt := 0; attempt < 50; attempt++ {
		id := fmt.Sprintf("PO-%d-%03d", year, s.rnd.Intn(900)+100)
		if _, taken := used[id]; !taken {
			return id, nil
		}
	}
	for n := 100; n < 1000; n++ {
		id := fmt.Sprintf("PO-%d-%03d", year, n)
		if _, taken := used[id]; !taken {
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.PurchaseOrder, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list purchase orders: %w", err)
	}
	return query.Filter(orders,
		query.Contains(func(po domain.PurchaseOrder) string { return po.Supplier }, f.Search),
		query.Equals(func(po domain.PurchaseOrder) string { return string(po.Status) }, f.Status),
	), nil
}

func seedOrders() []domain.PurchaseOrder {
	return []domain.PurchaseOrder{
		{ID: "PO-2023-055", Supplier: "مورد أقمشة النور", Date: "2023-10-20", Total: decimal.NewFromInt(45000), Status: domain.StatusCompleted},
		{ID: "PO-2023-056", Supplier: "شركة الإكسسوارات الحديثة", Date: "2023-10-22", Total: decimal.NewFromInt(12000), Status: domain.StatusInProgress},
		{ID: "PO-2023-057", Supplier: "مورد أقمشة النور", Date: "2023-10-25", Total: decimal.NewFromInt(78000), Status: domain.StatusInProgress},
		{ID: "PO-2023-058", Supplier: "شركة الخيوط الذهبية", Date: "2023-10-28", Total: decimal.NewFromInt(5500), Status: domain.StatusPostponed},
	}
}
