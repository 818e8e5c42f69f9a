package tracking

import "errors"

var (
	ErrMissingID       = errors.New("live order id is required")
	ErrInvalidStatus   = errors.New("unknown live order status")
	ErrInvalidProgress = errors.New("progress must be within 0..100")
)
