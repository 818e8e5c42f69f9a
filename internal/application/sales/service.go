package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/dashboard"
	domain "backoffice/internal/domain/order"
	"backoffice/internal/domain/query"
	"backoffice/internal/domain/repository"
	"backoffice/pkg/logger"
)

var ErrNilOrder = errors.New("order is nil")

// Publisher hands an encoded order to the event stream.
type Publisher interface {
	PublishOrder(ctx context.Context, key string, payload []byte) error
}

// Codec converts orders to and from their wire form.
type Codec interface {
	Encode(o *domain.Order) ([]byte, error)
	Decode(payload []byte) (*domain.Order, error)
}

// StorefrontSource is the remote platform the dashboard reads from.
type StorefrontSource interface {
	FetchOrders(ctx context.Context) ([]domain.Order, error)
	FetchDashboardStats(ctx context.Context) (dashboard.Stats, error)
}

type CreateInvoiceCommand struct {
	CustomerName string          `json:"customer_name"`
	Total        decimal.Decimal `json:"total"`
}

// OrderFilter narrows List. Search matches the customer name; Status accepts
// the match-all sentinels.
type OrderFilter struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

// Service is the sales order log. Writes go out through the publisher and
// come back through HandleMessage into the repository.
type Service struct {
	repo      repository.OrderRepository
	publisher Publisher
	codec     Codec
	source    StorefrontSource
	log       logger.Logger
	now       func() time.Time
}

func NewService(
	repo repository.OrderRepository,
	publisher Publisher,
	codec Codec,
	source StorefrontSource,
	log logger.Logger,
) *Service {
	return &Service{
		repo:      repo,
		publisher: publisher,
		codec:     codec,
		source:    source,
		log:       log.WithFields(logger.String("component", "sales")),
		now:       time.Now,
	}
}

// NewOrderID returns an invoice id of the form ORD-XXXXXXXX.
func NewOrderID() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return "ORD-" + strings.ToUpper(raw[:8])
}

// SubmitOrder encodes o and publishes it (write-only path).
func (s *Service) SubmitOrder(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return ErrNilOrder
	}

	data, err := s.codec.Encode(o)
	if err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	if err := s.publisher.PublishOrder(ctx, o.ID, data); err != nil {
		return fmt.Errorf("publish order: %w", err)
	}
	return nil
}

// HandleMessage decodes a consumed payload and stores it.
func (s *Service) HandleMessage(ctx context.Context, payload []byte) error {
	o, err := s.codec.Decode(payload)
	if err != nil {
		return fmt.Errorf("decode order: %w", err)
	}
	return s.HandleConsumedOrder(ctx, o)
}

// HandleConsumedOrder stores an order read back from the stream.
func (s *Service) HandleConsumedOrder(ctx context.Context, o *domain.Order) error {
	if o == nil {
		return ErrNilOrder
	}
	if err := s.repo.Save(ctx, o); err != nil {
		return fmt.Errorf("save order: %w", err)
	}
	s.log.WithContext(ctx).Debug("order stored", logger.String("order_id", o.ID), logger.String("status", string(o.Status)))
	return nil
}

// CreateInvoice records a new pending cash-on-delivery order dated today.
func (s *Service) CreateInvoice(ctx context.Context, cmd CreateInvoiceCommand) (*domain.Order, error) {
	o, err := domain.NewOrder(NewOrderID(), cmd.CustomerName, s.now(), cmd.Total, domain.StatusPending, domain.PaymentCashOnDelivery)
	if err != nil {
		return nil, err
	}
	if err := s.SubmitOrder(ctx, o); err != nil {
		return nil, err
	}

	s.log.WithContext(ctx).Info("invoice created",
		logger.String("order_id", o.ID),
		logger.String("customer", o.CustomerName),
		logger.String("total", o.Total.StringFixed(2)),
	)
	return o, nil
}

// RecordSale logs a completed point-of-sale transaction as a delivered order.
func (s *Service) RecordSale(ctx context.Context, customer string, payment domain.PaymentMethod, total decimal.Decimal) (*domain.Order, error) {
	o, err := domain.NewOrder(NewOrderID(), customer, s.now(), total, domain.StatusDelivered, payment)
	if err != nil {
		return nil, err
	}
	if err := s.SubmitOrder(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Sync imports the storefront's orders. The snapshot is stored back to front
// so List returns it in the storefront's own order.
func (s *Service) Sync(ctx context.Context) (int, error) {
	orders, err := s.source.FetchOrders(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch orders: %w", err)
	}

	count := 0
	for i := len(orders) - 1; i >= 0; i-- {
		o := orders[i]
		if err := s.repo.Save(ctx, &o); err != nil {
			return count, fmt.Errorf("save order %s: %w", o.ID, err)
		}
		count++
	}

	s.log.WithContext(ctx).Info("orders synced", logger.Int("count", count))
	return count, nil
}

func (s *Service) List(ctx context.Context, f OrderFilter) ([]domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return query.Filter(orders,
		query.Contains(func(o domain.Order) string { return o.CustomerName }, f.Search),
		query.Equals(func(o domain.Order) string { return string(o.Status) }, f.Status),
	), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Order, error) {
	o, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find order: %w", err)
	}
	return o, nil
}

func (s *Service) DashboardStats(ctx context.Context) (dashboard.Stats, error) {
	stats, err := s.source.FetchDashboardStats(ctx)
	if err != nil {
		return dashboard.Stats{}, fmt.Errorf("fetch dashboard stats: %w", err)
	}
	return stats, nil
}
