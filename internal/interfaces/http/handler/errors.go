package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	trackingapp "backoffice/internal/application/tracking"
	"backoffice/internal/domain/inventory"
	"backoffice/internal/domain/manufacturing"
	"backoffice/internal/domain/order"
	"backoffice/internal/domain/pos"
	"backoffice/internal/domain/purchase"
	"backoffice/pkg/logger"
)

// statusFor maps domain sentinels to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrMissingField),
		errors.Is(err, order.ErrInvalidTotal),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrInvalidPaymentMethod),
		errors.Is(err, inventory.ErrMissingField),
		errors.Is(err, inventory.ErrInvalidStock),
		errors.Is(err, inventory.ErrInvalidPrice),
		errors.Is(err, purchase.ErrMissingSupplier),
		errors.Is(err, purchase.ErrInvalidTotal),
		errors.Is(err, manufacturing.ErrMissingProduct),
		errors.Is(err, manufacturing.ErrInvalidQuantity),
		errors.Is(err, manufacturing.ErrMissingName),
		errors.Is(err, manufacturing.ErrMissingStock),
		errors.Is(err, manufacturing.ErrInvalidReorder):
		return http.StatusBadRequest
	case errors.Is(err, inventory.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrDuplicateSKU),
		errors.Is(err, pos.ErrEmptyCart),
		errors.Is(err, pos.ErrInsufficientStock),
		errors.Is(err, trackingapp.ErrAlreadyRunning),
		errors.Is(err, trackingapp.ErrStartCancelled):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

func writeError(c *gin.Context, log logger.Logger, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		log.WithContext(c.Request.Context()).Error("request failed",
			logger.String("path", c.FullPath()),
			logger.Error(err),
		)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
