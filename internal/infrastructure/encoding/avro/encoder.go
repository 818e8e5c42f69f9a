package avro

import (
	"fmt"

	"github.com/linkedin/goavro/v2"

	"backoffice/internal/domain/order"
)

// OrderCodec encodes sales orders as Avro binary. goavro codecs are safe for
// concurrent use.
type OrderCodec struct {
	codec *goavro.Codec
}

func NewOrderCodec() (*OrderCodec, error) {
	return newOrderCodec(OrderSchema)
}

func newOrderCodec(schema string) (*OrderCodec, error) {
	codec, err := goavro.NewCodec(schema)
	if err != nil {
		return nil, fmt.Errorf("failed to create avro codec: %w", err)
	}
	return &OrderCodec{codec: codec}, nil
}

func (c *OrderCodec) Encode(o *order.Order) ([]byte, error) {
	binary, err := c.codec.BinaryFromNative(nil, toNative(o))
	if err != nil {
		return nil, fmt.Errorf("failed to encode to avro binary: %w", err)
	}
	return binary, nil
}

func (c *OrderCodec) Decode(payload []byte) (*order.Order, error) {
	native, _, err := c.codec.NativeFromBinary(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to decode avro binary: %w", err)
	}
	record, ok := native.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("avro payload is not a record")
	}
	return fromNative(record)
}
