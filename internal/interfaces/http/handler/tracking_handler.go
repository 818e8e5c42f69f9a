package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	app "backoffice/internal/application/tracking"
	"backoffice/pkg/logger"
)

type TrackingHandler struct {
	svc *app.Service
	log logger.Logger
}

func NewTrackingHandler(svc *app.Service, log logger.Logger) *TrackingHandler {
	return &TrackingHandler{svc: svc, log: log}
}

func (h *TrackingHandler) LiveOrders(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"running": h.svc.Running(),
		"ticks":   h.svc.Ticks(),
		"orders":  h.svc.Snapshot(),
	})
}

func (h *TrackingHandler) Start(c *gin.Context) {
	if err := h.svc.Start(c.Request.Context()); err != nil {
		writeError(c, h.log, err)
		return
	}
	c.Status(http.StatusAccepted)
}

func (h *TrackingHandler) Stop(c *gin.Context) {
	h.svc.Stop()
	c.Status(http.StatusNoContent)
}
