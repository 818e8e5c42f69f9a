package avro

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"backoffice/internal/domain/order"
)

func toNative(o *order.Order) map[string]interface{} {
	out := map[string]interface{}{
		"id":             o.ID,
		"customer_name":  o.CustomerName,
		"date":           o.Date,
		"total":          o.Total.String(),
		"status":         string(o.Status),
		"payment_method": nil,
		"created_at":     nil,
	}
	if o.PaymentMethod != "" {
		out["payment_method"] = map[string]interface{}{"string": string(o.PaymentMethod)}
	}
	if !o.CreatedAt.IsZero() {
		out["created_at"] = map[string]interface{}{"long": o.CreatedAt.UnixMilli()}
	}
	return out
}

func fromNative(rec map[string]interface{}) (*order.Order, error) {
	id, err := requiredString(rec, "id")
	if err != nil {
		return nil, err
	}
	customer, err := requiredString(rec, "customer_name")
	if err != nil {
		return nil, err
	}
	date, err := requiredString(rec, "date")
	if err != nil {
		return nil, err
	}
	rawTotal, err := requiredString(rec, "total")
	if err != nil {
		return nil, err
	}
	status, err := requiredString(rec, "status")
	if err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(rawTotal)
	if err != nil {
		return nil, fmt.Errorf("field total: %w", err)
	}

	o := &order.Order{
		ID:           id,
		CustomerName: customer,
		Date:         date,
		Total:        total,
		Status:       order.Status(status),
	}
	if v, ok := unionValue(rec, "payment_method", "string").(string); ok {
		o.PaymentMethod = order.PaymentMethod(v)
	}
	if v, ok := unionValue(rec, "created_at", "long").(int64); ok {
		o.CreatedAt = time.UnixMilli(v).UTC()
	}
	return o, nil
}

func requiredString(rec map[string]interface{}, key string) (string, error) {
	v, ok := rec[key].(string)
	if !ok {
		return "", fmt.Errorf("field %s: missing or not a string", key)
	}
	return v, nil
}

// unionValue unwraps goavro's {"<type>": value} union form. Null yields nil.
func unionValue(rec map[string]interface{}, key, typ string) interface{} {
	wrapped, ok := rec[key].(map[string]interface{})
	if !ok {
		return nil
	}
	return wrapped[typ]
}
