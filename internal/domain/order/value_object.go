package order

// Status is the lifecycle label of a sales order.
type Status string

const (
	StatusPending   Status = "Pending"
	StatusShipped   Status = "Shipped"
	StatusDelivered Status = "Delivered"
	StatusCancelled Status = "Cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "Credit Card"
	PaymentPayPal         PaymentMethod = "PayPal"
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
)

func (p PaymentMethod) Valid() bool {
	switch p {
	case PaymentCreditCard, PaymentPayPal, PaymentCashOnDelivery:
		return true
	}
	return false
}
