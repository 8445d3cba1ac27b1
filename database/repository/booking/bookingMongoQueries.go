package bookingRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"medexam/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const statusConfirmed = "Confirmed"

func (r *mongoBookingRepo) GetConfirmedInRange(ctx context.Context, fromDate, toDate, excludeID string) ([]models.ExistingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status": statusConfirmed,
		"date":   bson.M{"$gte": fromDate, "$lte": toDate},
	}
	if excludeID != "" {
		filter["id"] = bson.M{"$ne": excludeID}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "slotStartMinutes", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings in range: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.ExistingBooking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}
	return bookings, nil
}

func (r *mongoBookingRepo) GetByID(ctx context.Context, id string) (*models.ExistingBooking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.ExistingBooking
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&booking)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("booking %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking %s: %w", id, err)
	}
	return &booking, nil
}

func (r *mongoBookingRepo) Create(ctx context.Context, booking *models.ExistingBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = statusConfirmed
	}
	booking.CreatedAt = time.Now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *mongoBookingRepo) Cancel(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx,
		bson.M{"id": id},
		bson.M{"$set": bson.M{"status": "Cancelled"}},
	)
	if err != nil {
		return fmt.Errorf("failed to cancel booking %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBookingRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "examinerId", Value: 1}, {Key: "date", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("booking indexes: %v", err)
	}
}
