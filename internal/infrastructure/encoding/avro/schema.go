package avro

// OrderSchema is the Avro record for a sales order event.
// Total travels as a decimal string so no precision is lost on the way.
// Optional fields are unions with null, which goavro wraps as
// map[string]interface{}{"<type>": value}.
const OrderSchema = `{
	"type": "record",
	"name": "SalesOrder",
	"namespace": "backoffice.sales",
	"fields": [
		{"name": "id", "type": "string"},
		{"name": "customer_name", "type": "string"},
		{"name": "date", "type": "string"},
		{"name": "total", "type": "string"},
		{"name": "status", "type": "string"},
		{"name": "payment_method", "type": ["null", "string"], "default": null},
		{"name": "created_at", "type": ["null", "long"], "default": null}
	]
}`
