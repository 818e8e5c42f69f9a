package manufacturing

import (
	"strings"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPlanning   Status = "Planning"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPlanning, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// ProductionOrder is a batch of a finished product scheduled on the floor.
type ProductionOrder struct {
	ID       string          `json:"id"`
	Product  string          `json:"product"`
	Quantity int             `json:"quantity"`
	Status   Status          `json:"status"`
	Cost     decimal.Decimal `json:"cost"`
}

// NewProductionOrder creates an order in planning with no cost booked yet.
func NewProductionOrder(id, product string, quantity int) (*ProductionOrder, error) {
	product = strings.TrimSpace(product)
	if product == "" {
		return nil, ErrMissingProduct
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &ProductionOrder{
		ID:       id,
		Product:  product,
		Quantity: quantity,
		Status:   StatusPlanning,
		Cost:     decimal.Zero,
	}, nil
}
