package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/booking"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
	"github.com/Tshikamisava/nanny-gold-sub003/utils"
)

// PricingHandler exposes the quote and proration endpoints.
type PricingHandler struct {
	Service booking.BookingService
}

func NewPricingHandler(svc booking.BookingService) *PricingHandler {
	return &PricingHandler{Service: svc}
}

// PreviewPricing handles POST /api/pricing/preview. Invalid configurations
// still return 200 with isValid=false so clients can render the problems.
func (h *PricingHandler) PreviewPricing(c *gin.Context) {
	logger := utils.GetLogger()
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Service.PreviewPricing(c, req)
	if err != nil {
		logger.Error("pricing preview failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute pricing"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ProrationPreview handles POST /api/pricing/proration. It is a pure
// calculation against the supplied monthly total; nothing is persisted.
func (h *PricingHandler) ProrationPreview(c *gin.Context) {
	var req struct {
		Changes             []models.ServiceChange `json:"changes"`
		CurrentMonthlyTotal float64                `json:"currentMonthlyTotal"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := pricing.Prorate(req.Changes, time.Now(), req.CurrentMonthlyTotal)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
