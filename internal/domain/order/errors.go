package order

import "errors"

var (
	ErrMissingField         = errors.New("required field is missing")
	ErrInvalidTotal         = errors.New("total must not be negative")
	ErrInvalidStatus        = errors.New("unknown order status")
	ErrInvalidPaymentMethod = errors.New("unknown payment method")
)
