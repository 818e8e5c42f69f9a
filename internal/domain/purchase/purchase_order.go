package purchase

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusInProgress Status = "قيد التنفيذ"
	StatusCompleted  Status = "مكتمل"
	StatusPostponed  Status = "مؤجل"
)

func (s Status) Valid() bool {
	switch s {
	case StatusInProgress, StatusCompleted, StatusPostponed:
		return true
	}
	return false
}

var (
	ErrMissingSupplier = errors.New("supplier is required")
	ErrInvalidTotal    = errors.New("total must not be negative")
)

// PurchaseOrder is an order placed with a supplier.
type PurchaseOrder struct {
	ID       string          `json:"id"`
	Supplier string          `json:"supplier"`
	Date     string          `json:"date"`
	Total    decimal.Decimal `json:"total"`
	Status   Status          `json:"status"`
}

// NewPurchaseOrder creates an order in the in-progress state.
func NewPurchaseOrder(id, supplier string, date time.Time, total decimal.Decimal) (*PurchaseOrder, error) {
	supplier = strings.TrimSpace(supplier)
	if supplier == "" {
		return nil, ErrMissingSupplier
	}
	if total.IsNegative() {
		return nil, ErrInvalidTotal
	}
	return &PurchaseOrder{
		ID:       id,
		Supplier: supplier,
		Date:     date.Format("2006-01-02"),
		Total:    total,
		Status:   StatusInProgress,
	}, nil
}
