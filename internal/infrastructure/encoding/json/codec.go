// Package json is the default wire codec for order events.
package json

import (
	"encoding/json"
	"fmt"

	"backoffice/internal/domain/order"
)

type OrderCodec struct{}

func NewOrderCodec() OrderCodec {
	return OrderCodec{}
}

func (OrderCodec) Encode(o *order.Order) ([]byte, error) {
	data, err := json.Marshal(o)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}
	return data, nil
}

func (OrderCodec) Decode(payload []byte) (*order.Order, error) {
	if !json.Valid(payload) {
		return nil, fmt.Errorf("decode order: invalid json")
	}
	var o order.Order
	if err := json.Unmarshal(payload, &o); err != nil {
		return nil, fmt.Errorf("decode order: %w", err)
	}
	return &o, nil
}
