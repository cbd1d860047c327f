package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
	"github.com/Tshikamisava/nanny-gold-sub003/services/revenue"
)

// PreviewPricing prices a booking configuration without persisting anything.
// Invalid configurations still return a result so the caller can render the
// enumerated problems.
func (s *DefaultBookingService) PreviewPricing(ctx context.Context, req CreateBookingRequest) (*models.PricingResult, error) {
	selection := pricing.MapServices(req.Preferences, req.Context.DurationType)
	return s.Engine.ComputePricing(ctx, selection, req.Context)
}

// CreateBooking prices the request, persists the booking and finalizes its
// revenue breakdown exactly once.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, *models.PricingResult, error) {
	if req.UserID == "" {
		return nil, nil, NewInvalidConfigError([]string{"missing required parameter: userId"})
	}

	selection := pricing.MapServices(req.Preferences, req.Context.DurationType)
	result, err := s.Engine.ComputePricing(ctx, selection, req.Context)
	if err != nil {
		return nil, nil, fmt.Errorf("pricing failed: %w", err)
	}
	if !result.IsValid {
		return nil, result, NewInvalidConfigError(result.Errors)
	}

	now := time.Now()
	booking := &models.Booking{
		ID:                     uuid.New().String(),
		UserID:                 req.UserID,
		NannyID:                req.NannyID,
		DurationType:           req.Context.DurationType,
		BookingType:            req.Context.BookingType,
		HomeSize:               req.Context.HomeSize,
		LivingArrangement:      req.Context.LivingArrangement,
		ChildrenAges:           req.Context.ChildrenAges,
		OtherDependents:        req.Context.OtherDependents,
		SelectedDates:          req.Context.SelectedDates,
		TimeSlots:              req.Context.TimeSlots,
		Services:               selection,
		BaseRate:               result.BaseRate,
		AdditionalServicesCost: additionalServicesCost(result),
		TotalCost:              result.Total,
		PlacementFee:           result.PlacementFee,
		EstimatedPricing:       result.Estimated,
		Status:                 models.BookingStatusActive,
		CreatedAt:              now,
		UpdatedAt:              now,
	}

	if err := s.BookingRepo.Create(ctx, booking); err != nil {
		return nil, nil, err
	}

	if _, err := s.Revenue.FinalizeBooking(ctx, booking); err != nil &&
		!errors.Is(err, revenue.ErrAlreadyFinalized) {
		return nil, nil, fmt.Errorf("booking %s created but revenue finalization failed: %w", booking.ID, err)
	}

	s.Logger.Info("booking created",
		zap.String("bookingId", booking.ID),
		zap.String("durationType", booking.DurationType),
		zap.Float64("total", booking.TotalCost),
		zap.Bool("estimated", booking.EstimatedPricing))
	return booking, result, nil
}

// GetBooking retrieves a booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	return s.BookingRepo.GetByID(ctx, bookingID)
}

// ListUserBookings retrieves all bookings made by a user.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.BookingRepo.ListByUser(ctx, userID)
}

// GetRevenueBreakdown returns the stored breakdown for a booking.
func (s *DefaultBookingService) GetRevenueBreakdown(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error) {
	return s.Revenue.GetBreakdown(ctx, bookingID)
}

// additionalServicesCost sums the add-on line items, leaving out the platform
// fee and surcharge lines that are not caregiver add-on revenue.
func additionalServicesCost(result *models.PricingResult) float64 {
	var total float64
	for _, fee := range result.ServiceFees {
		if fee.Name == "Service Fee" || fee.Name == "Emergency Surcharge" {
			continue
		}
		total += fee.Amount
	}
	return total
}
