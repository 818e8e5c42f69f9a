package manufacturing

import (
	"strings"

	"backoffice/internal/domain/inventory"
)

// RawMaterial is a production input. Stock is free text with a unit, for
// example "250 متر".
type RawMaterial struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Stock   string `json:"stock"`
	Reorder int    `json:"reorder"`
}

func NewRawMaterial(id, name, stock string, reorder int) (*RawMaterial, error) {
	name = strings.TrimSpace(name)
	stock = strings.TrimSpace(stock)
	if name == "" {
		return nil, ErrMissingName
	}
	if stock == "" {
		return nil, ErrMissingStock
	}
	if reorder < 0 {
		return nil, ErrInvalidReorder
	}
	return &RawMaterial{ID: id, Name: name, Stock: stock, Reorder: reorder}, nil
}

// Quantity is the leading number of Stock. ok is false when Stock does not
// start with a number.
func (m RawMaterial) Quantity() (n int, ok bool) {
	for _, r := range strings.TrimSpace(m.Stock) {
		d, isDigit := digitValue(r)
		if !isDigit {
			break
		}
		n = n*10 + d
		ok = true
	}
	return n, ok
}

// NeedsReorder applies the warehouse low-stock rule with the material's own
// reorder level. A stock without a leading number never triggers it.
func (m RawMaterial) NeedsReorder() bool {
	n, ok := m.Quantity()
	return ok && inventory.IsLow(n, m.Reorder)
}

// digitValue accepts ASCII and Arabic-Indic digits.
func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= '٠' && r <= '٩':
		return int(r - '٠'), true
	}
	return 0, false
}
