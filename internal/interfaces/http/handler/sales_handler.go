package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/sales"
	"backoffice/pkg/logger"
)

type SalesHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewSalesHandler(svc *app.Service, log logger.Logger) *SalesHandler {
	return &SalesHandler{svc: svc, log: log}
}

func (h *SalesHandler) ListOrders(c *gin.Context) {
	var f app.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}

	orders, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *SalesHandler) CreateInvoice(c *gin.Context) {
	var cmd app.CreateInvoiceCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, err)
		return
	}

	order, err := h.svc.CreateInvoice(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *SalesHandler) Sync(c *gin.Context) {
	n, err := h.svc.Sync(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"synced": n})
}

func (h *SalesHandler) DashboardStats(c *gin.Context) {
	stats, err := h.svc.DashboardStats(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
