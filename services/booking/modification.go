package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
)

// RequestModification computes the proposed proration numbers for a change
// to an active long-term booking and records them as a durable request in
// pending_admin_review state. Nothing is applied here; an admin reviewer
// moves the request to a terminal state.
func (s *DefaultBookingService) RequestModification(ctx context.Context, input ModificationInput) (*models.ModificationRequest, error) {
	booking, err := s.BookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, err
	}
	if booking.DurationType != models.DurationLongTerm {
		return nil, NewInvalidConfigError([]string{"only long-term bookings can be modified mid-cycle"})
	}
	if booking.Status != models.BookingStatusActive {
		return nil, NewInvalidConfigError([]string{fmt.Sprintf("booking is %s, not active", booking.Status)})
	}

	now := time.Now()
	var proration models.ProrationResult
	newServices := booking.Services

	switch input.ModificationType {
	case models.ModificationCancellation:
		// Cancelling credits the unused remainder of the current cycle.
		daysRemaining := pricing.DaysRemainingInMonth(now)
		prorated := -booking.TotalCost * float64(daysRemaining) / pricing.ProrationDayBasis
		proration = models.ProrationResult{
			ProratedAdjustment:    prorated,
			FullAdjustment:        -booking.TotalCost,
			DaysRemaining:         daysRemaining,
			NextBillingCycleTotal: booking.TotalCost + prorated,
			OngoingMonthlyTotal:   0,
		}
	case models.ModificationServiceAddition, models.ModificationServiceRemoval:
		if len(input.Changes) == 0 {
			return nil, NewInvalidConfigError([]string{"no service changes supplied"})
		}
		proration, err = pricing.Prorate(input.Changes, now, booking.TotalCost)
		if err != nil {
			return nil, err
		}
		newServices = applyServiceChanges(booking.Services, input.Changes)
	default:
		return nil, NewInvalidConfigError([]string{fmt.Sprintf("unrecognized modificationType: %s", input.ModificationType)})
	}

	request := &models.ModificationRequest{
		ID:               uuid.New().String(),
		BookingID:        booking.ID,
		ModificationType: input.ModificationType,
		Changes:          input.Changes,
		OldValues: map[string]any{
			"services":           booking.Services,
			"total_monthly_cost": booking.TotalCost,
		},
		NewValues: map[string]any{
			"services":           newServices,
			"total_monthly_cost": proration.OngoingMonthlyTotal,
		},
		PriceAdjustment:       proration.ProratedAdjustment,
		FullAdjustment:        proration.FullAdjustment,
		NextBillingCycleTotal: proration.NextBillingCycleTotal,
		OngoingMonthlyTotal:   proration.OngoingMonthlyTotal,
		Status:                models.ModificationStatusPending,
		CreatedAt:             now,
	}

	if err := s.ModificationRepo.Create(ctx, request); err != nil {
		return nil, err
	}

	s.Logger.Info("modification requested",
		zap.String("bookingId", booking.ID),
		zap.String("requestId", request.ID),
		zap.String("type", input.ModificationType),
		zap.Float64("proratedAdjustment", request.PriceAdjustment))
	return request, nil
}

// ReviewModification applies or rejects a pending request. Applying a
// service change moves the booking's recurring total to the ongoing monthly
// figure frozen on the request; applying a cancellation ends the booking.
func (s *DefaultBookingService) ReviewModification(ctx context.Context, requestID string, approve bool, reviewer string) (*models.ModificationRequest, error) {
	request, err := s.ModificationRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != models.ModificationStatusPending {
		return nil, NewInvalidConfigError([]string{fmt.Sprintf("request is already %s", request.Status)})
	}

	status := models.ModificationStatusRejected
	if approve {
		status = models.ModificationStatusApplied
		if err := s.applyModification(ctx, request); err != nil {
			return nil, err
		}
	}

	if err := s.ModificationRepo.SetReviewed(ctx, requestID, status, reviewer); err != nil {
		return nil, err
	}

	request.Status = status
	request.ReviewedBy = reviewer
	request.ReviewedAt = time.Now()
	return request, nil
}

// ListModifications returns the modification history for a booking.
func (s *DefaultBookingService) ListModifications(ctx context.Context, bookingID string) ([]models.ModificationRequest, error) {
	return s.ModificationRepo.ListByBooking(ctx, bookingID)
}

func (s *DefaultBookingService) applyModification(ctx context.Context, request *models.ModificationRequest) error {
	booking, err := s.BookingRepo.GetByID(ctx, request.BookingID)
	if err != nil {
		return err
	}

	if request.ModificationType == models.ModificationCancellation {
		return s.BookingRepo.UpdateStatus(ctx, booking.ID, models.BookingStatusCancelled)
	}

	booking.Services = applyServiceChanges(booking.Services, request.Changes)
	booking.AdditionalServicesCost += request.FullAdjustment
	booking.TotalCost = request.OngoingMonthlyTotal
	booking.UpdatedAt = time.Now()
	return s.BookingRepo.Update(ctx, booking.ID, booking)
}

func applyServiceChanges(sel models.ServiceSelection, changes []models.ServiceChange) models.ServiceSelection {
	for _, change := range changes {
		on := change.Action == models.ChangeActionAdd
		switch change.Name {
		case models.TagCooking:
			sel.Cooking = on
		case models.TagSpecialNeeds:
			sel.SpecialNeeds = on
		case models.TagDrivingSupport:
			sel.DrivingSupport = on
		case models.TagPetCare:
			sel.PetCare = on
		case models.TagECDTraining:
			sel.ECDTraining = on
		case models.TagMontessori:
			sel.Montessori = on
		case models.TagBackupNanny:
			sel.BackupNanny = on
		case models.TagLightHousekeeping:
			sel.LightHousekeeping = on
		case models.TagErrandRuns:
			sel.ErrandRuns = on
		}
	}
	return sel
}
