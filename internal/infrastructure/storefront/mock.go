// Package storefront simulates the remote storefront platform. Every fetch
// waits for the configured latency and returns a fresh copy of its data.
package storefront

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/config"
	"backoffice/internal/domain/dashboard"
	"backoffice/internal/domain/inventory"
	"backoffice/internal/domain/order"
	"backoffice/internal/domain/tracking"
	"backoffice/pkg/logger"
)

type MockSource struct {
	latency time.Duration
	log     logger.Logger

	mu  sync.Mutex
	rnd *rand.Rand

	orders    []order.Order
	inventory []inventory.Item
	live      []tracking.LiveOrder
}

// NewMockSource seeds its random source from cfg.Seed, or from the clock
// when the seed is zero.
func NewMockSource(cfg config.StorefrontConfig, log logger.Logger) *MockSource {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &MockSource{
		latency:   cfg.Latency,
		log:       log.WithFields(logger.String("component", "storefront")),
		rnd:       rand.New(rand.NewSource(seed)),
		orders:    fixtureOrders(),
		inventory: fixtureInventory(),
		live:      fixtureLiveOrders(),
	}
}

// FetchDashboardStats returns randomized headline figures. InventoryItems is
// the total stock units of the storefront catalog.
func (s *MockSource) FetchDashboardStats(ctx context.Context) (dashboard.Stats, error) {
	if err := s.wait(ctx); err != nil {
		return dashboard.Stats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	units := 0
	for _, item := range s.inventory {
		units += item.Stock
	}
	return dashboard.Stats{
		DailySales:     decimal.NewFromInt(int64(s.rnd.Intn(20000) + 5000)),
		NewOrders:      s.rnd.Intn(100) + 10,
		MonthlyProfit:  decimal.NewFromInt(int64(s.rnd.Intn(300000) + 100000)),
		InventoryItems: units,
	}, nil
}

func (s *MockSource) FetchOrders(ctx context.Context) ([]order.Order, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]order.Order, len(s.orders))
	copy(out, s.orders)
	return out, nil
}

func (s *MockSource) FetchInventory(ctx context.Context) ([]inventory.Item, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]inventory.Item, len(s.inventory))
	copy(out, s.inventory)
	return out, nil
}

func (s *MockSource) FetchLiveOrders(ctx context.Context) ([]tracking.LiveOrder, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]tracking.LiveOrder, len(s.live))
	for i, o := range s.live {
		out[i] = o.Clone()
	}
	return out, nil
}

// Float64 draws from the source's seeded stream, so one STOREFRONT_SEED
// reproduces both the fetched data and the tracker's transitions.
func (s *MockSource) Float64() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rnd.Float64()
}

func (s *MockSource) wait(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		s.log.Debug("storefront call cancelled", logger.Error(ctx.Err()))
		return ctx.Err()
	case <-time.After(s.latency):
		return nil
	}
}
