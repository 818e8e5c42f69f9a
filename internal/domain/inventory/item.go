package inventory

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultLowStockThreshold is the reorder level used by the warehouse view.
const DefaultLowStockThreshold = 30

// Item is a stock-keeping record keyed by SKU.
type Item struct {
	SKU      string          `json:"sku"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Stock    int             `json:"stock"`
	Price    decimal.Decimal `json:"price"`
}

// NewItem validates an inventory record. The SKU is normalized to upper case.
func NewItem(sku, name, category string, stock int, price decimal.Decimal) (*Item, error) {
	sku = NormalizeSKU(sku)
	name = strings.TrimSpace(name)
	category = strings.TrimSpace(category)
	if sku == "" || name == "" || category == "" {
		return nil, ErrMissingField
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	if price.IsNegative() {
		return nil, ErrInvalidPrice
	}

	return &Item{
		SKU:      sku,
		Name:     name,
		Category: category,
		Stock:    stock,
		Price:    price,
	}, nil
}

func NormalizeSKU(sku string) string {
	return strings.ToUpper(strings.TrimSpace(sku))
}

// IsLow reports whether a stock level is at or below threshold. The
// boundary is inclusive: stock == threshold is low.
func IsLow(stock, threshold int) bool {
	return stock <= threshold
}

func (i Item) IsLowStock(threshold int) bool {
	return IsLow(i.Stock, threshold)
}

// IsAvailable is the complement of IsLowStock.
func (i Item) IsAvailable(threshold int) bool {
	return !i.IsLowStock(threshold)
}
