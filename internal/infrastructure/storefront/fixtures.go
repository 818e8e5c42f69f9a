package storefront

import (
	"github.com/shopspring/decimal"

	"backoffice/internal/domain/inventory"
	"backoffice/internal/domain/order"
	"backoffice/internal/domain/tracking"
)

func fixtureOrders() []order.Order {
	return []order.Order{
		{ID: "SHPF-5821", CustomerName: "سارة أحمد", Date: "2023-10-27", Total: decimal.RequireFromString("1250.00"), Status: order.StatusShipped, PaymentMethod: order.PaymentCreditCard},
		{ID: "SHPF-5820", CustomerName: "فاطمة علي", Date: "2023-10-27", Total: decimal.RequireFromString("850.50"), Status: order.StatusPending, PaymentMethod: order.PaymentCashOnDelivery},
		{ID: "SHPF-5819", CustomerName: "نور محمد", Date: "2023-10-26", Total: decimal.RequireFromString("2400.00"), Status: order.StatusDelivered, PaymentMethod: order.PaymentPayPal},
		{ID: "SHPF-5818", CustomerName: "هبة خالد", Date: "2023-10-26", Total: decimal.RequireFromString("600.75"), Status: order.StatusCancelled, PaymentMethod: order.PaymentCreditCard},
		{ID: "SHPF-5817", CustomerName: "ريم مصطفى", Date: "2023-10-25", Total: decimal.RequireFromString("3100.00"), Status: order.StatusDelivered, PaymentMethod: order.PaymentCreditCard},
	}
}

func fixtureInventory() []inventory.Item {
	return []inventory.Item{
		{SKU: "FS-001", Name: "فستان سهرة اسود", Category: "فساتين", Stock: 75, Price: decimal.NewFromInt(1500)},
		{SKU: "BL-001", Name: "بلوزة حرير وردي", Category: "بلوزات", Stock: 120, Price: decimal.NewFromInt(750)},
		{SKU: "SK-001", Name: "تنورة بيضاء", Category: "تنانير", Stock: 25, Price: decimal.NewFromInt(600)},
		{SKU: "FS-002", Name: "فستان كاجوال أزرق", Category: "فساتين", Stock: 90, Price: decimal.NewFromInt(850)},
		{SKU: "BL-002", Name: "بلوزة قطن مخططة", Category: "بلوزات", Stock: 15, Price: decimal.NewFromInt(450)},
	}
}

func fixtureLiveOrders() []tracking.LiveOrder {
	alert := func(s string) *string { return &s }
	return []tracking.LiveOrder{
		{ID: "SHPF-5821", Status: tracking.StatusProcessing, Progress: 50},
		{ID: "SHPF-5820", Status: tracking.StatusShipped, Progress: 75},
		{ID: "SHPF-5819", Status: tracking.StatusDelayed, Progress: 25, Alert: alert("تأخير في التجهيز")},
		{ID: "SHPF-5818", Status: tracking.StatusDelivered, Progress: 100},
		{ID: "SHPF-5817", Status: tracking.StatusNewOrder, Progress: 10, Alert: alert("نقص في مخزون القماش")},
	}
}
