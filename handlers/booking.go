package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/services/booking"
	"github.com/Tshikamisava/nanny-gold-sub003/utils"
)

// BookingHandler exposes booking creation and read endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBooking handles POST /api/bookings. A configuration the pricing
// engine rejects comes back as 422 with the full result so the client can
// show what went wrong.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, result, err := h.Service.CreateBooking(c, req)
	if err != nil {
		var cfgErr *booking.InvalidConfigError
		if errors.As(err, &cfgErr) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "invalid booking configuration",
				"details": cfgErr.Problems,
				"pricing": result,
			})
			return
		}
		logger.Error("booking creation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"booking": created,
		"pricing": result,
	})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetBooking(c, id)
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "booking not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListUserBookings handles GET /api/users/:userID/bookings.
func (h *BookingHandler) ListUserBookings(c *gin.Context) {
	userID := c.Param("userID")
	bookings, err := h.Service.ListUserBookings(c, userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// GetRevenueBreakdown handles GET /api/bookings/:id/revenue.
func (h *BookingHandler) GetRevenueBreakdown(c *gin.Context) {
	id := c.Param("id")
	breakdown, err := h.Service.GetRevenueBreakdown(c, id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load revenue breakdown", err.Error())
		return
	}
	if breakdown == nil {
		utils.JSONError(c, http.StatusNotFound, "no revenue breakdown for booking", id)
		return
	}
	c.JSON(http.StatusOK, breakdown)
}
