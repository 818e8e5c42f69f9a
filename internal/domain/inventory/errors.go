package inventory

import "errors"

var (
	ErrMissingField      = errors.New("sku, name and category are required")
	ErrInvalidStock      = errors.New("stock must not be negative")
	ErrInvalidPrice      = errors.New("price must not be negative")
	ErrDuplicateSKU      = errors.New("sku already exists")
	ErrNotFound          = errors.New("inventory item not found")
	ErrInsufficientStock = errors.New("insufficient stock")
)
