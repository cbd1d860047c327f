package booking

import (
	"context"

	"go.uber.org/zap"

	bookingRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/booking"
	modificationRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/modification"
	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
	"github.com/Tshikamisava/nanny-gold-sub003/services/revenue"
)

// CreateBookingRequest carries everything needed to price and persist a new
// booking.
type CreateBookingRequest struct {
	UserID      string                       `json:"userId"`
	NannyID     string                       `json:"nannyId,omitempty"`
	Context     models.PricingContext        `json:"context"`
	Preferences models.RawServicePreferences `json:"preferences"`
}

// ModificationInput is a client's request to change an active booking.
type ModificationInput struct {
	BookingID        string                 `json:"bookingId"`
	ModificationType string                 `json:"modificationType"`
	Changes          []models.ServiceChange `json:"changes,omitempty"`
}

// BookingService defines the interface for the booking lifecycle around the
// pricing and revenue engines.
type BookingService interface {
	PreviewPricing(ctx context.Context, req CreateBookingRequest) (*models.PricingResult, error)
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, *models.PricingResult, error)
	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error)
	GetRevenueBreakdown(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error)
	RequestModification(ctx context.Context, input ModificationInput) (*models.ModificationRequest, error)
	ReviewModification(ctx context.Context, requestID string, approve bool, reviewer string) (*models.ModificationRequest, error)
	ListModifications(ctx context.Context, bookingID string) ([]models.ModificationRequest, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Engine           *pricing.Engine
	Revenue          revenue.RevenueService
	BookingRepo      bookingRepo.BookingRepository
	ModificationRepo modificationRepo.ModificationRepository
	Logger           *zap.Logger
}
