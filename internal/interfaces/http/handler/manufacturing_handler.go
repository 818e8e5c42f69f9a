package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/manufacturing"
	"backoffice/pkg/logger"
)

type ManufacturingHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewManufacturingHandler(svc *app.Service, log logger.Logger) *ManufacturingHandler {
	return &ManufacturingHandler{svc: svc, log: log}
}

func (h *ManufacturingHandler) ListOrders(c *gin.Context) {
	var f app.OrderFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}

	orders, err := h.svc.ListOrders(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *ManufacturingHandler) CreateOrder(c *gin.Context) {
	var cmd app.CreateOrderCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, err)
		return
	}

	po, err := h.svc.CreateOrder(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *ManufacturingHandler) ListMaterials(c *gin.Context) {
	var f app.MaterialFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}

	materials, err := h.svc.ListMaterials(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *ManufacturingHandler) AddMaterial(c *gin.Context) {
	var cmd app.AddMaterialCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, err)
		return
	}

	m, err := h.svc.AddMaterial(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *ManufacturingHandler) ReorderAlerts(c *gin.Context) {
	materials, err := h.svc.ReorderAlerts(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}
