package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/inventory"
	"backoffice/pkg/logger"
)

type InventoryHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewInventoryHandler(svc *app.Service, log logger.Logger) *InventoryHandler {
	return &InventoryHandler{svc: svc, log: log}
}

func (h *InventoryHandler) List(c *gin.Context) {
	var f app.Filter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}

	items, err := h.svc.List(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) Add(c *gin.Context) {
	var cmd app.AddItemCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.svc.Add(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("sku")); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) Categories(c *gin.Context) {
	cats, err := h.svc.Categories(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"threshold": h.svc.Threshold(),
		"items":     items,
	})
}
