package examRepo

import (
	"context"

	"medexam/database"
	"medexam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExamRepository is the case collaborator: examination records carry
// the service requirements driving eligibility and, for edit-in-place
// flows, the prior reservation.
type ExamRepository interface {
	GetByID(ctx context.Context, id string) (*models.Examination, error)
	Upsert(ctx context.Context, exam models.Examination) error
	// SetAppointment writes the committed appointment snapshot and the
	// booking reference onto the examination record.
	SetAppointment(ctx context.Context, examID string, appt models.SelectedAppointment, booking models.ExistingBooking) error
}

type mongoExamRepo struct {
	coll *mongo.Collection
}

// NewMongoExamRepo constructs a MongoDB-backed ExamRepository.
func NewMongoExamRepo() ExamRepository {
	r := &mongoExamRepo{
		coll: database.DB().Collection("examinations"),
	}
	r.ensureIndexes()
	return r
}
