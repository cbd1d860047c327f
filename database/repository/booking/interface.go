package bookingRepo

import (
	"context"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// BookingRepository defines the interface for booking data access.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	Update(ctx context.Context, bookingID string, booking *models.Booking) error
	UpdateStatus(ctx context.Context, bookingID, status string) error
	ListActiveLongTerm(ctx context.Context) ([]models.Booking, error)
	EnsureIndexes() error
}
