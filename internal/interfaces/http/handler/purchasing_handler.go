package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/purchasing"
	"backoffice/pkg/logger"
)

type PurchasingHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewPurchasingHandler(svc *app.Service, log logger.Logger) *PurchasingHandler {
	return &PurchasingHandler{svc: svc, log: log}
}

func (h *PurchasingHandler) List(c *gin.Context) {
	var f app.Filter
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

func (h *PurchasingHandler) Create(c *gin.Context) {
	var cmd app.CreateCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		badRequest(c, err)
		return
	}

	po, err := h.svc.Create(c.Request.Context(), cmd)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}
