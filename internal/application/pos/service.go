package pos

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/inventory"
	"backoffice/internal/domain/order"
	domain "backoffice/internal/domain/pos"
	"backoffice/pkg/logger"
)

// Catalog resolves SKUs and moves stock. The inventory service satisfies it.
type Catalog interface {
	Get(ctx context.Context, sku string) (*inventory.Item, error)
	AdjustStock(ctx context.Context, sku string, delta int) error
}

// SalesRecorder logs a completed checkout as a sales order.
type SalesRecorder interface {
	RecordSale(ctx context.Context, customer string, payment order.PaymentMethod, total decimal.Decimal) (*order.Order, error)
}

// Recorder observes checkout outcomes.
type Recorder interface {
	ObserveCheckout(total decimal.Decimal, lines int)
	ObserveCheckoutFailure(reason string)
}

type nopRecorder struct{}

func (nopRecorder) ObserveCheckout(decimal.Decimal, int) {}
func (nopRecorder) ObserveCheckoutFailure(string)        {}

type Config struct {
	// StrictStock validates quantities against stock and decrements stock
	// on checkout. Off by default: checkout never touches stock.
	StrictStock     bool
	DefaultCustomer string
}

type CheckoutCommand struct {
	CustomerName  string              `json:"customer_name"`
	PaymentMethod order.PaymentMethod `json:"payment_method"`
}

type Receipt struct {
	OrderID      string          `json:"order_id"`
	CustomerName string          `json:"customer_name"`
	Lines        []domain.Line   `json:"lines"`
	Total        decimal.Decimal `json:"total"`
	CheckedOutAt time.Time       `json:"checked_out_at"`
}

// CartView is a consistent read of the cart: Total always matches Lines.
type CartView struct {
	Lines []domain.Line   `json:"lines"`
	Total decimal.Decimal `json:"total"`
}

// Service owns the single active cart of the register.
type Service struct {
	catalog  Catalog
	sales    SalesRecorder
	cfg      Config
	recorder Recorder
	log      logger.Logger

	mu   sync.Mutex
	cart *domain.Cart
}

type Option func(*Service)

func WithRecorder(r Recorder) Option {
	return func(s *Service) {
		if r != nil {
			s.recorder = r
		}
	}
}

func NewService(catalog Catalog, sales SalesRecorder, cfg Config, log logger.Logger, opts ...Option) *Service {
	s := &Service{
		catalog:  catalog,
		sales:    sales,
		cfg:      cfg,
		recorder: nopRecorder{},
		log:      log.WithFields(logger.String("component", "pos")),
		cart:     domain.NewCart(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add puts one unit of sku in the cart.
func (s *Service) Add(ctx context.Context, sku string) (domain.Line, error) {
	item, err := s.catalog.Get(ctx, sku)
	if err != nil {
		return domain.Line{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cfg.StrictStock && s.cart.Quantity(item.SKU)+1 > item.Stock {
		return domain.Line{}, fmt.Errorf("%s: %w", item.SKU, domain.ErrInsufficientStock)
	}
	return s.cart.Add(*item), nil
}

// Remove drops the line for sku. Unknown SKUs are ignored.
func (s *Service) Remove(sku string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(inventory.NormalizeSKU(sku))
}

func (s *Service) Lines() []domain.Line {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

func (s *Service) Total() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

func (s *Service) View() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartView{Lines: s.cart.Lines(), Total: s.cart.Total()}
}

// Clear cancels the sale in progress.
func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Clear()
}

// Checkout sells the cart. On any failure the cart and stock are left as
// they were.
func (s *Service) Checkout(ctx context.Context, cmd CheckoutCommand) (*Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cart.IsEmpty() {
		s.recorder.ObserveCheckoutFailure("empty_cart")
		return nil, domain.ErrEmptyCart
	}

	customer := strings.TrimSpace(cmd.CustomerName)
	if customer == "" {
		customer = s.cfg.DefaultCustomer
	}
	payment := cmd.PaymentMethod
	if payment == "" {
		payment = order.PaymentCashOnDelivery
	}

	lines := s.cart.Lines()
	total := s.cart.Total()

	var applied []domain.Line
	if s.cfg.StrictStock {
		var err error
		applied, err = s.reserve(ctx, lines)
		if err != nil {
			s.recorder.ObserveCheckoutFailure("stock")
			return nil, err
		}
	}

	o, err := s.sales.RecordSale(ctx, customer, payment, total)
	if err != nil {
		s.release(ctx, applied)
		s.recorder.ObserveCheckoutFailure("record_sale")
		return nil, fmt.Errorf("record sale: %w", err)
	}

	if _, err := s.cart.Checkout(); err != nil {
		return nil, err
	}
	s.recorder.ObserveCheckout(total, len(lines))
	s.log.WithContext(ctx).Info("checkout completed",
		logger.String("order_id", o.ID),
		logger.Int("lines", len(lines)),
		logger.String("total", total.StringFixed(2)),
		logger.Bool("strict_stock", s.cfg.StrictStock),
	)

	return &Receipt{
		OrderID:      o.ID,
		CustomerName: customer,
		Lines:        lines,
		Total:        total,
		CheckedOutAt: o.CreatedAt,
	}, nil
}

// reserve decrements stock line by line. If a line fails, the decrements
// already made are undone in reverse order.
func (s *Service) reserve(ctx context.Context, lines []domain.Line) ([]domain.Line, error) {
	applied := make([]domain.Line, 0, len(lines))
	for _, l := range lines {
		if err := s.catalog.AdjustStock(ctx, l.Item.SKU, -l.Quantity); err != nil {
			s.release(ctx, applied)
			if errors.Is(err, inventory.ErrInsufficientStock) {
				return nil, fmt.Errorf("%s: %w", l.Item.SKU, domain.ErrInsufficientStock)
			}
			return nil, fmt.Errorf("reserve %s: %w", l.Item.SKU, err)
		}
		applied = append(applied, l)
	}
	return applied, nil
}

func (s *Service) release(ctx context.Context, applied []domain.Line) {
	for i := len(applied) - 1; i >= 0; i-- {
		l := applied[i]
		if err := s.catalog.AdjustStock(ctx, l.Item.SKU, l.Quantity); err != nil {
			s.log.Error("failed to restore stock",
				logger.String("sku", l.Item.SKU),
				logger.Int("quantity", l.Quantity),
				logger.Error(err),
			)
		}
	}
}
