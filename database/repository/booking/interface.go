package bookingRepo

import (
	"context"

	"medexam/database"
	"medexam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the confirmed-booking side of the schedule
// source, and the persistence point the booking collaborator commits
// through. The availability engine only ever reads from it.
type BookingRepository interface {
	// GetConfirmedInRange returns confirmed bookings whose date falls in
	// [fromDate, toDate] ("2006-01-02", inclusive). excludeID removes
	// the booking being edited so its own slot shows as free.
	GetConfirmedInRange(ctx context.Context, fromDate, toDate, excludeID string) ([]models.ExistingBooking, error)
	GetByID(ctx context.Context, id string) (*models.ExistingBooking, error)
	// Create inserts a confirmed booking, assigning ID/Status/CreatedAt
	// when unset.
	Create(ctx context.Context, booking *models.ExistingBooking) error
	Cancel(ctx context.Context, id string) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB-backed BookingRepository.
func NewMongoBookingRepo() BookingRepository {
	r := &mongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
	r.ensureIndexes()
	return r
}
