// Package pos holds the point-of-sale cart. A Cart is owned by one session
// and is not safe for concurrent use.
package pos

import (
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/inventory"
)

// Line is one cart entry. Quantity is always at least 1.
type Line struct {
	Item     inventory.Item `json:"item"`
	Quantity int            `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Item.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Cart struct {
	lines []Line
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of item into the cart. An existing line for the same SKU
// is incremented instead of duplicated.
func (c *Cart) Add(item inventory.Item) Line {
	for i := range c.lines {
		if c.lines[i].Item.SKU == item.SKU {
			c.lines[i].Quantity++
			return c.lines[i]
		}
	}
	line := Line{Item: item, Quantity: 1}
	c.lines = append(c.lines, line)
	return line
}

// Remove drops the line for sku. Removing an absent SKU is a no-op.
func (c *Cart) Remove(sku string) {
	for i := range c.lines {
		if c.lines[i].Item.SKU == sku {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Quantity returns the quantity held for sku, or 0.
func (c *Cart) Quantity(sku string) int {
	for _, l := range c.lines {
		if l.Item.SKU == sku {
			return l.Quantity
		}
	}
	return 0
}

// Total sums quantity × price over the current lines. It is never cached.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) Len() int {
	return len(c.lines)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Checkout reports the total and empties the cart. It fails with
// ErrEmptyCart, leaving the cart untouched, when there is nothing to sell.
func (c *Cart) Checkout() (decimal.Decimal, error) {
	if c.IsEmpty() {
		return decimal.Zero, ErrEmptyCart
	}
	total := c.Total()
	c.Clear()
	return total, nil
}

// Clear empties the cart unconditionally.
func (c *Cart) Clear() {
	c.lines = nil
}
