package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/interfaces/http/handler"
)

type Handlers struct {
	Sales         *handler.SalesHandler
	Inventory     *handler.InventoryHandler
	Purchasing    *handler.PurchasingHandler
	Manufacturing *handler.ManufacturingHandler
	POS           *handler.POSHandler
	Tracking      *handler.TrackingHandler
	Settings      *handler.SettingsHandler
	Metrics       http.Handler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	if h.Metrics != nil {
		r.GET("/metrics", gin.WrapH(h.Metrics))
	}
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/dashboard/stats", h.Sales.DashboardStats)

		api.GET("/orders", h.Sales.ListOrders)
		api.POST("/orders", h.Sales.CreateInvoice)
		api.POST("/orders/sync", h.Sales.Sync)

		api.GET("/inventory", h.Inventory.List)
		api.POST("/inventory", h.Inventory.Add)
		api.GET("/inventory/categories", h.Inventory.Categories)
		api.GET("/inventory/low-stock", h.Inventory.LowStock)
		api.DELETE("/inventory/:sku", h.Inventory.Delete)

		api.GET("/purchase-orders", h.Purchasing.List)
		api.POST("/purchase-orders", h.Purchasing.Create)

		if h.Manufacturing != nil {
			api.GET("/production-orders", h.Manufacturing.ListOrders)
			api.POST("/production-orders", h.Manufacturing.CreateOrder)
			api.GET("/raw-materials", h.Manufacturing.ListMaterials)
			api.POST("/raw-materials", h.Manufacturing.AddMaterial)
			api.GET("/raw-materials/reorder", h.Manufacturing.ReorderAlerts)
		}

		api.GET("/pos/cart", h.POS.Cart)
		api.DELETE("/pos/cart", h.POS.Clear)
		api.POST("/pos/cart/items", h.POS.AddLine)
		api.DELETE("/pos/cart/items/:sku", h.POS.RemoveLine)
		api.POST("/pos/checkout", h.POS.Checkout)

		api.GET("/tracking/live-orders", h.Tracking.LiveOrders)
		api.POST("/tracking/start", h.Tracking.Start)
		api.POST("/tracking/stop", h.Tracking.Stop)

		if h.Settings != nil {
			api.GET("/settings", h.Settings.Get)
		}
	}
}
