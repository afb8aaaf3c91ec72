package http

import (
	"errors"
	"net/http"

	"smartmenu-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP statuses. Validation failures
// carry identifying detail; storage faults surface as a generic 500 without
// leaking internals.
func respondError(c *gin.Context, log *zap.Logger, err error) {
	if ve, ok := service.AsValidation(err); ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": ve.Error(),
			"kind":  string(ve.Kind),
		})
		return
	}

	switch {
	case errors.Is(err, service.ErrOrderNotFound),
		errors.Is(err, service.ErrCategoryNotFound),
		errors.Is(err, service.ErrProductNotFound),
		errors.Is(err, service.ErrOptionGroupNotFound),
		errors.Is(err, service.ErrOptionValueNotFound),
		errors.Is(err, service.ErrVoucherNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyItems),
		errors.Is(err, service.ErrQuantityInvalid),
		errors.Is(err, service.ErrInvalidDeliveryMethod),
		errors.Is(err, service.ErrInvalidPaymentMethod),
		errors.Is(err, service.ErrInvalidOrderStatus),
		errors.Is(err, service.ErrInvalidVoucherType),
		errors.Is(err, service.ErrCustomerDetailsMissing):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCodeAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		log.Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
