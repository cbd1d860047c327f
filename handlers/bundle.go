package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every gin handler the router needs.
type HandlerBundle struct {
	// Pricing endpoints.
	PreviewPricing   gin.HandlerFunc
	ProrationPreview gin.HandlerFunc

	// Booking endpoints.
	CreateBooking       gin.HandlerFunc
	GetBooking          gin.HandlerFunc
	ListUserBookings    gin.HandlerFunc
	GetRevenueBreakdown gin.HandlerFunc

	// Modification endpoints.
	RequestModification gin.HandlerFunc
	ReviewModification  gin.HandlerFunc
	ListModifications   gin.HandlerFunc
}
