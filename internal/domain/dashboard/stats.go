package dashboard

import "github.com/shopspring/decimal"

// Stats is the headline figures block of the dashboard.
type Stats struct {
	DailySales     decimal.Decimal `json:"daily_sales"`
	NewOrders      int             `json:"new_orders"`
	MonthlyProfit  decimal.Decimal `json:"monthly_profit"`
	InventoryItems int             `json:"inventory_items"`
}
