package tracking

import "strings"

// Status is the fulfillment stage shown on the live tracking board.
type Status string

const (
	StatusNewOrder   Status = "New Order"
	StatusProcessing Status = "Processing"
	StatusShipped    Status = "Shipped"
	StatusDelayed    Status = "Delayed"
	StatusDelivered  Status = "Delivered"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNewOrder, StatusProcessing, StatusShipped, StatusDelayed, StatusDelivered:
		return true
	}
	return false
}

// Terminal reports whether no further transition can apply.
func (s Status) Terminal() bool {
	return s == StatusDelivered
}

// LiveOrder is the simulator-owned projection of an order's fulfillment.
// Its ID matches a sales order ID but the two records evolve independently.
type LiveOrder struct {
	ID       string  `json:"id"`
	Status   Status  `json:"status"`
	Progress int     `json:"progress"`
	Alert    *string `json:"alert"`
}

func NewLiveOrder(id string, status Status, progress int, alert string) (LiveOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return LiveOrder{}, ErrMissingID
	}
	if !status.Valid() {
		return LiveOrder{}, ErrInvalidStatus
	}
	if progress < 0 || progress > 100 {
		return LiveOrder{}, ErrInvalidProgress
	}

	o := LiveOrder{ID: id, Status: status, Progress: progress}
	if alert != "" {
		o.Alert = &alert
	}
	return o, nil
}

// HasAlert reports whether an alert annotation is attached.
func (o LiveOrder) HasAlert() bool {
	return o.Alert != nil && *o.Alert != ""
}

// Clone returns a copy that shares no memory with o.
func (o LiveOrder) Clone() LiveOrder {
	if o.Alert != nil {
		a := *o.Alert
		o.Alert = &a
	}
	return o
}
