package revenueRepo

import (
	"context"
	"errors"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// ErrDuplicateBreakdown is returned when a breakdown already exists for the
// booking id. At most one breakdown record may exist per booking.
var ErrDuplicateBreakdown = errors.New("revenue breakdown already exists for booking")

// RevenueRepository defines the interface for revenue-breakdown data access.
type RevenueRepository interface {
	Insert(ctx context.Context, breakdown *models.RevenueBreakdown) error
	GetByBookingID(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error)
	EnsureIndexes() error
}
