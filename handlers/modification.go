package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/services/booking"
	"github.com/Tshikamisava/nanny-gold-sub003/utils"
)

// ModificationHandler exposes the mid-cycle modification workflow.
type ModificationHandler struct {
	Service booking.BookingService
}

func NewModificationHandler(svc booking.BookingService) *ModificationHandler {
	return &ModificationHandler{Service: svc}
}

// RequestModification handles POST /api/bookings/:id/modifications.
func (h *ModificationHandler) RequestModification(c *gin.Context) {
	logger := utils.GetLogger()
	var input booking.ModificationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	input.BookingID = c.Param("id")

	request, err := h.Service.RequestModification(c, input)
	if err != nil {
		var cfgErr *booking.InvalidConfigError
		if errors.As(err, &cfgErr) {
			utils.JSONValidationError(c, http.StatusUnprocessableEntity, "modification rejected", cfgErr.Problems)
			return
		}
		logger.Error("modification request failed",
			zap.String("bookingId", input.BookingID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to request modification"})
		return
	}
	c.JSON(http.StatusCreated, request)
}

// ReviewModification handles PUT /api/modifications/:id/review.
func (h *ModificationHandler) ReviewModification(c *gin.Context) {
	logger := utils.GetLogger()
	var input struct {
		Approve  bool   `json:"approve"`
		Reviewer string `json:"reviewer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	requestID := c.Param("id")
	request, err := h.Service.ReviewModification(c, requestID, input.Approve, input.Reviewer)
	if err != nil {
		var cfgErr *booking.InvalidConfigError
		if errors.As(err, &cfgErr) {
			utils.JSONValidationError(c, http.StatusConflict, "cannot review request", cfgErr.Problems)
			return
		}
		logger.Error("modification review failed",
			zap.String("requestId", requestID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to review modification"})
		return
	}
	c.JSON(http.StatusOK, request)
}

// ListModifications handles GET /api/bookings/:id/modifications.
func (h *ModificationHandler) ListModifications(c *gin.Context) {
	bookingID := c.Param("id")
	requests, err := h.Service.ListModifications(c, bookingID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list modifications", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifications": requests})
}
