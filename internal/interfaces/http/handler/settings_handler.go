package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backoffice/internal/config"
)

// SettingsHandler reports the effective configuration. Secrets are never
// returned, only whether they are set.
type SettingsHandler struct {
	cfg *config.Config
}

func NewSettingsHandler(cfg *config.Config) *SettingsHandler {
	return &SettingsHandler{cfg: cfg}
}

func (h *SettingsHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app_name": h.cfg.App.Name,
		"storefront": gin.H{
			"api_key":        h.cfg.Storefront.MaskedAPIKey(),
			"api_secret_set": h.cfg.Storefront.HasSecret(),
			"latency_ms":     h.cfg.Storefront.Latency.Milliseconds(),
		},
		"tracking": gin.H{
			"interval_ms": h.cfg.Tracking.Interval.Milliseconds(),
			"scheduler":   h.cfg.Tracking.Scheduler,
		},
		"pos": gin.H{
			"strict_stock":     h.cfg.POS.StrictStock,
			"default_customer": h.cfg.POS.DefaultCustomer,
		},
		"inventory": gin.H{
			"low_stock_threshold": h.cfg.Inventory.LowStockThreshold,
		},
		"stores": gin.H{
			"orders":    h.cfg.Storage.Orders,
			"inventory": h.cfg.Storage.Inventory,
		},
		"kafka_enabled": h.cfg.Kafka.Enabled,
	})
}
