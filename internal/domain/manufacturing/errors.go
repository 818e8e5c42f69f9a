package manufacturing

import "errors"

var (
	ErrMissingProduct  = errors.New("product is required")
	ErrInvalidQuantity = errors.New("quantity must be positive")
	ErrMissingName     = errors.New("material name is required")
	ErrMissingStock    = errors.New("material stock is required")
	ErrInvalidReorder  = errors.New("reorder level must not be negative")
)
