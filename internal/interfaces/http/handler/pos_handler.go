package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/pos"
	"backoffice/pkg/logger"
)

type POSHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewPOSHandler(svc *app.Service, log logger.Logger) *POSHandler {
	return &POSHandler{svc: svc, log: log}
}

type addLineRequest struct {
	SKU string `json:"sku" binding:"required"`
}

func (h *POSHandler) Cart(c *gin.Context) {
	h.writeCart(c, http.StatusOK)
}

func (h *POSHandler) AddLine(c *gin.Context) {
	var req addLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	if _, err := h.svc.Add(c.Request.Context(), req.SKU); err != nil {
		writeError(c, h.log, err)
		return
	}
	h.writeCart(c, http.StatusOK)
}

func (h *POSHandler) RemoveLine(c *gin.Context) {
	h.svc.Remove(c.Param("sku"))
	h.writeCart(c, http.StatusOK)
}

func (h *POSHandler) Clear(c *gin.Context) {
	h.svc.Clear()
	c.Status(http.StatusNoContent)
}

func (h *POSHandler) Checkout(c *gin.Context) {
	var cmd app.CheckoutCommand
	// an empty body sells to the default customer
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&cmd); err != nil {
			badRequest(c, err)
			return
		}
	}

	receipt, err := h.svc.Checkout(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

func (h *POSHandler) writeCart(c *gin.Context, status int) {
	c.JSON(status, h.svc.View())
}
