package pos

import (
	"errors"

	"backoffice/internal/domain/inventory"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInsufficientStock is shared with the ledger so callers match one value.
	ErrInsufficientStock = inventory.ErrInsufficientStock
)
