package order

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar format used for Order.Date.
const DateLayout = "2006-01-02"

// Order is a canonical sales record. Only Status may change after creation.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Date          string          `json:"date"`
	Total         decimal.Decimal `json:"total"`
	Status        Status          `json:"status"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

func NewOrder(id, customerName string, date time.Time, total decimal.Decimal, status Status, payment PaymentMethod) (*Order, error) {
	id = strings.TrimSpace(id)
	customerName = strings.TrimSpace(customerName)
	if id == "" || customerName == "" {
		return nil, ErrMissingField
	}
	if total.IsNegative() {
		return nil, ErrInvalidTotal
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	if !payment.Valid() {
		return nil, ErrInvalidPaymentMethod
	}

	return &Order{
		ID:            id,
		CustomerName:  customerName,
		Date:          date.Format(DateLayout),
		Total:         total,
		Status:        status,
		PaymentMethod: payment,
		CreatedAt:     time.Now().UTC(),
	}, nil
}
