package revenue

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	revenueRepo "github.com/Tshikamisava/nanny-gold-sub003/database/repository/revenue"
	"github.com/Tshikamisava/nanny-gold-sub003/models"
	"github.com/Tshikamisava/nanny-gold-sub003/services/pricing"
)

// ErrAlreadyFinalized signals a caller bug: a second finalize attempt for a
// booking that already has its breakdown. The stored breakdown is returned
// alongside it so the caller can still proceed read-only.
var ErrAlreadyFinalized = errors.New("booking already has a revenue breakdown")

// RevenueService finalizes the three-way revenue split for bookings.
type RevenueService interface {
	FinalizeBooking(ctx context.Context, booking *models.Booking) (*models.RevenueBreakdown, error)
	GetBreakdown(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error)
}

// DefaultRevenueService implements RevenueService.
type DefaultRevenueService struct {
	Repo   revenueRepo.RevenueRepository
	Client SplitClient // remote authority; nil means compute locally (development)
	Logger *zap.Logger
}

// NewRevenueService constructs a DefaultRevenueService.
func NewRevenueService(repo revenueRepo.RevenueRepository, client SplitClient, logger *zap.Logger) *DefaultRevenueService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultRevenueService{Repo: repo, Client: client, Logger: logger}
}

// FinalizeBooking computes and persists the revenue breakdown for a freshly
// created booking. It is idempotent per booking id: the unique index guards
// storage, and a repeat invocation returns the stored record with
// ErrAlreadyFinalized instead of writing a second one.
func (s *DefaultRevenueService) FinalizeBooking(ctx context.Context, booking *models.Booking) (*models.RevenueBreakdown, error) {
	existing, err := s.Repo.GetByBookingID(ctx, booking.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, ErrAlreadyFinalized
	}

	clientTotal := booking.TotalCost
	if booking.DurationType == models.DurationLongTerm {
		clientTotal += booking.PlacementFee
	}

	breakdown := models.RevenueBreakdown{
		ID:        uuid.New().String(),
		BookingID: booking.ID,
		CreatedAt: time.Now(),
	}

	if split, rerr := s.remoteSplit(ctx, booking, clientTotal); rerr == nil {
		breakdown.FixedFee = split.FixedFee
		breakdown.CommissionPercent = split.CommissionPercent
		breakdown.CommissionAmount = split.CommissionAmount
		breakdown.AdminTotalRevenue = split.AdminTotalRevenue
		breakdown.NannyEarnings = split.NannyEarnings
		breakdown.ClientCharge = clientTotal
		breakdown.Authoritative = true
	} else {
		s.Logger.Warn("authoritative revenue split unavailable, applying local allocation",
			zap.String("bookingId", booking.ID), zap.Error(rerr))
		local, aerr := s.allocateLocal(booking)
		if aerr != nil {
			return nil, aerr
		}
		breakdown.FixedFee = local.FixedFee
		breakdown.CommissionPercent = local.CommissionPercent
		breakdown.CommissionAmount = local.CommissionAmount
		breakdown.AdminTotalRevenue = local.AdminTotalRevenue
		breakdown.NannyEarnings = local.NannyEarnings
		breakdown.ClientCharge = local.ClientCharge
		breakdown.Authoritative = false
	}

	if err := s.Repo.Insert(ctx, &breakdown); err != nil {
		if errors.Is(err, revenueRepo.ErrDuplicateBreakdown) {
			// Lost a race with a concurrent finalize; the stored record wins.
			stored, gerr := s.Repo.GetByBookingID(ctx, booking.ID)
			if gerr == nil && stored != nil {
				return stored, ErrAlreadyFinalized
			}
		}
		return nil, err
	}

	s.Logger.Info("revenue breakdown recorded",
		zap.String("bookingId", booking.ID),
		zap.Float64("clientCharge", breakdown.ClientCharge),
		zap.Float64("nannyEarnings", breakdown.NannyEarnings),
		zap.Bool("authoritative", breakdown.Authoritative))
	return &breakdown, nil
}

// GetBreakdown returns the stored breakdown for a booking, or nil when the
// booking has not been financialized.
func (s *DefaultRevenueService) GetBreakdown(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error) {
	return s.Repo.GetByBookingID(ctx, bookingID)
}

func (s *DefaultRevenueService) remoteSplit(ctx context.Context, booking *models.Booking, clientTotal float64) (*SplitResponse, error) {
	if s.Client == nil {
		return nil, errors.New("no revenue function configured")
	}
	return s.Client.ComputeSplit(ctx, SplitRequest{
		BookingID:              booking.ID,
		ClientTotal:            clientTotal,
		BookingType:            booking.BookingType,
		LivingArrangement:      booking.LivingArrangement,
		HomeSize:               booking.HomeSize,
		AdditionalServicesCost: booking.AdditionalServicesCost,
	})
}

// allocateLocal mirrors the authoritative split with the local rate
// constants.
func (s *DefaultRevenueService) allocateLocal(booking *models.Booking) (models.RevenueBreakdown, error) {
	if booking.DurationType == models.DurationLongTerm {
		return Allocate(booking.TotalCost, models.DurationLongTerm, booking.BaseRate, booking.PlacementFee)
	}

	fixedFee := pricing.HourlyModeServiceFee
	if booking.BookingType == models.BookingTypeTemporary {
		fixedFee = pricing.DailyModeServiceFee
	}
	// Commission applies to the labor amount only: the short-term total less
	// the platform fee and the uncommissioned add-on revenue.
	laborAmount := booking.TotalCost - fixedFee - booking.AdditionalServicesCost
	return Allocate(booking.TotalCost, models.DurationShortTerm, laborAmount, fixedFee)
}
