package inventory

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "backoffice/internal/domain/inventory"
	"backoffice/internal/domain/query"
	"backoffice/internal/domain/repository"
	"backoffice/pkg/logger"
)

// CatalogSource supplies the storefront's inventory snapshot.
type CatalogSource interface {
	FetchInventory(ctx context.Context) ([]domain.Item, error)
}

type AddItemCommand struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

// Filter narrows List. Search matches the item name; Category accepts the
// match-all sentinels.
type Filter struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// Service is the inventory ledger.
type Service struct {
	repo      repository.InventoryRepository
	source    CatalogSource
	threshold int
	log       logger.Logger
}

func NewService(repo repository.InventoryRepository, source CatalogSource, threshold int, log logger.Logger) *Service {
	if threshold < 0 {
		threshold = domain.DefaultLowStockThreshold
	}
	return &Service{
		repo:      repo,
		source:    source,
		threshold: threshold,
		log:       log.WithFields(logger.String("component", "inventory")),
	}
}

func (s *Service) Threshold() int {
	return s.threshold
}

// Load seeds the ledger from the storefront, keeping records already held.
// It returns how many items were inserted.
func (s *Service) Load(ctx context.Context) (int, error) {
	items, err := s.source.FetchInventory(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch inventory: %w", err)
	}

	inserted := 0
	// insert back to front so the ledger lists the snapshot in its own order
	for i := len(items) - 1; i >= 0; i-- {
		item := items[i]
		err := s.repo.Insert(ctx, &item)
		if errors.Is(err, domain.ErrDuplicateSKU) {
			continue
		}
		if err != nil {
			return inserted, fmt.Errorf("insert %s: %w", item.SKU, err)
		}
		inserted++
	}

	s.log.Info("inventory loaded", logger.Int("fetched", len(items)), logger.Int("inserted", inserted))
	return inserted, nil
}

// Add validates and inserts a new record. It becomes the first listed item.
func (s *Service) Add(ctx context.Context, cmd AddItemCommand) (*domain.Item, error) {
	item, err := domain.NewItem(cmd.SKU, cmd.Name, cmd.Category, cmd.Stock, cmd.Price)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	s.log.Info("inventory item added", logger.String("sku", item.SKU), logger.Int("stock", item.Stock))
	return item, nil
}

// Delete removes sku. Unknown SKUs are ignored.
func (s *Service) Delete(ctx context.Context, sku string) error {
	if err := s.repo.Delete(ctx, domain.NormalizeSKU(sku)); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

// Get returns the record for sku or ErrNotFound.
func (s *Service) Get(ctx context.Context, sku string) (*domain.Item, error) {
	item, err := s.repo.FindBySKU(ctx, domain.NormalizeSKU(sku))
	if err != nil {
		return nil, fmt.Errorf("find item: %w", err)
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return query.Filter(items,
		query.Contains(func(i domain.Item) string { return i.Name }, f.Search),
		query.Equals(func(i domain.Item) string { return i.Category }, f.Category),
	), nil
}

// Categories returns "All" followed by each distinct category in ledger order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	out := []string{query.All}
	seen := make(map[string]struct{}, len(items))
	for _, i := range items {
		if _, ok := seen[i.Category]; ok {
			continue
		}
		seen[i.Category] = struct{}{}
		out = append(out, i.Category)
	}
	return out, nil
}

// LowStock lists items at or below the configured threshold.
func (s *Service) LowStock(ctx context.Context) ([]domain.Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return query.Filter(items, func(i domain.Item) bool {
		return i.IsLowStock(s.threshold)
	}), nil
}

// AdjustStock changes stock by delta. Stock never goes below zero.
func (s *Service) AdjustStock(ctx context.Context, sku string, delta int) error {
	if delta == 0 {
		return nil
	}
	if err := s.repo.AdjustStock(ctx, domain.NormalizeSKU(sku), delta); err != nil {
		return fmt.Errorf("adjust stock %s: %w", sku, err)
	}
	return nil
}
