package modificationRepo

import (
	"context"

	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// ModificationRepository defines the interface for modification-request
// data access.
type ModificationRepository interface {
	Create(ctx context.Context, request *models.ModificationRequest) error
	GetByID(ctx context.Context, requestID string) (*models.ModificationRequest, error)
	ListByBooking(ctx context.Context, bookingID string) ([]models.ModificationRequest, error)
	SetReviewed(ctx context.Context, requestID, status, reviewer string) error
	EnsureIndexes() error
}
