package revenueRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Tshikamisava/nanny-gold-sub003/config"
	"github.com/Tshikamisava/nanny-gold-sub003/database"
	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// MongoRevenueRepo implements RevenueRepository using MongoDB.
type MongoRevenueRepo struct {
	coll *mongo.Collection
}

// NewMongoRevenueRepo constructs a new instance of MongoRevenueRepo.
func NewMongoRevenueRepo() RevenueRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoRevenueRepo{
		coll: db.Collection("revenue_breakdowns"),
	}
}

// Insert stores a breakdown with insert-once semantics: the unique index on
// booking_id rejects a second record for the same booking.
func (repo *MongoRevenueRepo) Insert(ctx context.Context, breakdown *models.RevenueBreakdown) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, breakdown)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateBreakdown
		}
		return fmt.Errorf("error creating revenue breakdown: %w", err)
	}
	return nil
}

// GetByBookingID retrieves the breakdown for a booking, or nil when none
// exists yet.
func (repo *MongoRevenueRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.RevenueBreakdown, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var breakdown models.RevenueBreakdown
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"booking_id": bookingID}).Decode(&breakdown)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("error fetching revenue breakdown for booking %s: %w", bookingID, err)
	}
	return &breakdown, nil
}
