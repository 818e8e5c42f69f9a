package pos

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"backoffice/internal/domain/inventory"
)

var (
	blouse = inventory.Item{SKU: "BL-001", Name: "بلوزة حرير وردي", Category: "بلوزات", Stock: 120, Price: decimal.NewFromInt(750)}
	dress  = inventory.Item{SKU: "FS-001", Name: "فستان سهرة اسود", Category: "فساتين", Stock: 75, Price: decimal.NewFromInt(1500)}
)

func TestCart_AddIncrementsExistingLine(t *testing.T) {
	c := NewCart()

	c.Add(blouse)
	line := c.Add(blouse)

	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, 1, c.Len())
	assert.Equal(t, 2, c.Quantity("BL-001"))
}

func TestCart_Total(t *testing.T) {
	c := NewCart()
	c.Add(blouse)
	c.Add(dress)
	c.Add(blouse)

	assert.True(t, decimal.NewFromInt(3000).Equal(c.Total()), "got %s", c.Total())
}

func TestCart_TotalTracksEveryChange(t *testing.T) {
	c := NewCart()
	assert.True(t, c.Total().IsZero())

	c.Add(dress)
	assert.True(t, decimal.NewFromInt(1500).Equal(c.Total()))

	c.Remove("FS-001")
	assert.True(t, c.Total().IsZero())
}

func TestCart_RemoveIsIdempotent(t *testing.T) {
	once := NewCart()
	once.Add(blouse)
	once.Add(dress)
	once.Remove("BL-001")

	twice := NewCart()
	twice.Add(blouse)
	twice.Add(dress)
	twice.Remove("BL-001")
	twice.Remove("BL-001")

	assert.Equal(t, once.Lines(), twice.Lines())
	assert.Equal(t, []Line{{Item: dress, Quantity: 1}}, twice.Lines())
}

func TestCart_CheckoutClearsState(t *testing.T) {
	c := NewCart()
	c.Add(blouse)
	c.Add(blouse)
	c.Add(dress)

	total, err := c.Checkout()
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(3000).Equal(total))
	assert.True(t, c.IsEmpty())

	_, err = c.Checkout()
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCart_CheckoutEmptyLeavesCartUntouched(t *testing.T) {
	c := NewCart()

	total, err := c.Checkout()

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.True(t, total.IsZero())
	assert.Equal(t, 0, c.Len())
}

func TestCart_LinesIsACopy(t *testing.T) {
	c := NewCart()
	c.Add(blouse)

	lines := c.Lines()
	lines[0].Quantity = 99

	assert.Equal(t, 1, c.Quantity("BL-001"))
}

func TestCart_Clear(t *testing.T) {
	c := NewCart()
	c.Add(blouse)
	c.Clear()
	c.Clear()

	assert.True(t, c.IsEmpty())
}
