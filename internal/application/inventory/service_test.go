package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "backoffice/internal/domain/inventory"
	"backoffice/internal/infrastructure/persistence/memory"
	"backoffice/pkg/logger"
)

type MockCatalogSource struct {
	mock.Mock
}

func (m *MockCatalogSource) FetchInventory(ctx context.Context) ([]domain.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func catalog() []domain.Item {
	return []domain.Item{
		{SKU: "EL-001", Name: "Wireless Headphones", Category: "Electronics", Stock: 30, Price: decimal.NewFromInt(450)},
		{SKU: "AC-002", Name: "Smart Watch", Category: "Accessories", Stock: 5, Price: decimal.NewFromInt(1200)},
		{SKU: "EL-003", Name: "USB Cable", Category: "Electronics", Stock: 31, Price: decimal.NewFromInt(40)},
	}
}

func newService(t *testing.T) (*Service, *MockCatalogSource) {
	t.Helper()
	src := new(MockCatalogSource)
	return NewService(memory.NewInventoryRepository(), src, domain.DefaultLowStockThreshold, logger.NewNop()), src
}

func TestService_LoadKeepsSnapshotOrder(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil).Twice()

	n, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// loading again inserts nothing new
	n, err = svc.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	items, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "EL-001", items[0].SKU)
	assert.Equal(t, "EL-003", items[2].SKU)
	src.AssertExpectations(t)
}

func TestService_LoadFetchError(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(nil, errors.New("down"))

	_, err := svc.Load(ctx)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch inventory")
}

func TestService_Add(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, AddItemCommand{SKU: " el-9 ", Name: "Mouse", Category: "Electronics", Stock: 3, Price: decimal.NewFromInt(10)})
	require.NoError(t, err)
	assert.Equal(t, "EL-9", item.SKU)

	_, err = svc.Add(ctx, AddItemCommand{SKU: "EL-9", Name: "Other", Category: "Electronics", Stock: 1, Price: decimal.NewFromInt(1)})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	_, err = svc.Add(ctx, AddItemCommand{SKU: "X", Name: "", Category: "c"})
	assert.ErrorIs(t, err, domain.ErrMissingField)

	_, err = svc.Add(ctx, AddItemCommand{SKU: "X", Name: "n", Category: "c", Stock: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidStock)

	_, err = svc.Add(ctx, AddItemCommand{SKU: "X", Name: "n", Category: "c", Price: decimal.NewFromInt(-1)})
	assert.ErrorIs(t, err, domain.ErrInvalidPrice)
}

func TestService_AddPrepends(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	_, err = svc.Add(ctx, AddItemCommand{SKU: "NEW-1", Name: "Lamp", Category: "Home", Stock: 50, Price: decimal.NewFromInt(90)})
	require.NoError(t, err)

	items, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, "NEW-1", items[0].SKU)
}

func TestService_DeleteUnknownIsNoop(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, "NOPE"))
	require.NoError(t, svc.Delete(ctx, "ac-002"))

	once, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Len(t, once, 2)

	require.NoError(t, svc.Delete(ctx, "AC-002"))

	twice, err := svc.List(ctx, Filter{})
	require.NoError(t, err)
	assert.Equal(t, once, twice)
	_, err = svc.Get(ctx, "AC-002")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_ListFilters(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{"all", Filter{Category: "All"}, []string{"EL-001", "AC-002", "EL-003"}},
		{"arabic sentinel", Filter{Category: "الكل"}, []string{"EL-001", "AC-002", "EL-003"}},
		{"category", Filter{Category: "Electronics"}, []string{"EL-001", "EL-003"}},
		{"search ignores case", Filter{Search: "WATCH"}, []string{"AC-002"}},
		{"search and category", Filter{Search: "usb", Category: "Electronics"}, []string{"EL-003"}},
		{"no match", Filter{Search: "usb", Category: "Accessories"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items, err := svc.List(ctx, tt.filter)
			require.NoError(t, err)
			got := make([]string, 0, len(items))
			for _, i := range items {
				got = append(got, i.SKU)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_CategoriesAndLowStock(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	cats, err := svc.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Electronics", "Accessories"}, cats)

	low, err := svc.LowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	// 30 sits on the inclusive boundary
	assert.Equal(t, "EL-001", low[0].SKU)
	assert.Equal(t, "AC-002", low[1].SKU)
}

func TestService_AdjustStock(t *testing.T) {
	svc, src := newService(t)
	ctx := context.Background()
	src.On("FetchInventory", ctx).Return(catalog(), nil)
	_, err := svc.Load(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.AdjustStock(ctx, "AC-002", -5))
	assert.ErrorIs(t, svc.AdjustStock(ctx, "AC-002", -1), domain.ErrInsufficientStock)
	assert.ErrorIs(t, svc.AdjustStock(ctx, "ZZ", 1), domain.ErrNotFound)

	item, err := svc.Get(ctx, "ac-002")
	require.NoError(t, err)
	assert.Equal(t, 0, item.Stock)

	_, err = svc.Get(ctx, "ZZ")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
