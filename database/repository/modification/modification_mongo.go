package modificationRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Tshikamisava/nanny-gold-sub003/config"
	"github.com/Tshikamisava/nanny-gold-sub003/database"
	"github.com/Tshikamisava/nanny-gold-sub003/models"
)

// MongoModificationRepo implements ModificationRepository using MongoDB.
type MongoModificationRepo struct {
	coll *mongo.Collection
}

// NewMongoModificationRepo constructs a new instance of MongoModificationRepo.
func NewMongoModificationRepo() ModificationRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &MongoModificationRepo{
		coll: db.Collection("modification_requests"),
	}
}

// Create inserts a new modification-request document.
func (repo *MongoModificationRepo) Create(ctx context.Context, request *models.ModificationRequest) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll.InsertOne(ctxWithTimeout, request)
	if err != nil {
		return fmt.Errorf("error creating modification request: %w", err)
	}
	return nil
}

// GetByID retrieves a modification request by its ID.
func (repo *MongoModificationRepo) GetByID(ctx context.Context, requestID string) (*models.ModificationRequest, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var request models.ModificationRequest
	err := repo.coll.FindOne(ctxWithTimeout, bson.M{"id": requestID}).Decode(&request)
	if err != nil {
		return nil, fmt.Errorf("modification request not found: %w", err)
	}
	return &request, nil
}

// ListByBooking retrieves all modification requests for a booking, newest
// first. Requests are append-only history; they are never rewritten.
func (repo *MongoModificationRepo) ListByBooking(ctx context.Context, bookingID string) ([]models.ModificationRequest, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.coll.Find(ctxWithTimeout, bson.M{"booking_id": bookingID}, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching modification requests for booking %s: %w", bookingID, err)
	}
	defer cursor.Close(ctxWithTimeout)

	var requests []models.ModificationRequest
	if err := cursor.All(ctxWithTimeout, &requests); err != nil {
		return nil, fmt.Errorf("error decoding modification requests: %w", err)
	}
	return requests, nil
}

// SetReviewed moves a request into a terminal state and records the reviewer.
func (repo *MongoModificationRepo) SetReviewed(ctx context.Context, requestID, status, reviewer string) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": requestID}
	update := bson.M{"$set": bson.M{
		"status":      status,
		"reviewed_by": reviewer,
		"reviewed_at": time.Now(),
	}}
	_, err := repo.coll.UpdateOne(ctxWithTimeout, filter, update)
	if err != nil {
		return fmt.Errorf("error reviewing modification request %s: %w", requestID, err)
	}
	return nil
}
