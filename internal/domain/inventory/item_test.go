package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem_NormalizesSKU(t *testing.T) {
	item, err := NewItem(" fs-003 ", "فستان", "فساتين", 10, decimal.NewFromInt(900))

	require.NoError(t, err)
	assert.Equal(t, "FS-003", item.SKU)
}

func TestNewItem_Invalid(t *testing.T) {
	_, err := NewItem("", "n", "c", 1, decimal.Zero)
	assert.ErrorIs(t, err, ErrMissingField)

	_, err = NewItem("A", "n", "c", -1, decimal.Zero)
	assert.ErrorIs(t, err, ErrInvalidStock)

	_, err = NewItem("A", "n", "c", 1, decimal.NewFromInt(-5))
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestItem_LowStockBoundary(t *testing.T) {
	tests := []struct {
		stock     int
		low       bool
		available bool
	}{
		{stock: 29, low: true, available: false},
		{stock: 30, low: true, available: false},
		{stock: 31, low: false, available: true},
		{stock: 0, low: true, available: false},
	}

	for _, tt := range tests {
		item := Item{SKU: "X", Stock: tt.stock}
		assert.Equal(t, tt.low, item.IsLowStock(DefaultLowStockThreshold), "stock %d", tt.stock)
		assert.Equal(t, tt.available, item.IsAvailable(DefaultLowStockThreshold), "stock %d", tt.stock)
	}
}
