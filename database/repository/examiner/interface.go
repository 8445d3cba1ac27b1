package examinerRepo

import (
	"context"

	"medexam/database"
	"medexam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ExaminerRepository is the roster side of the schedule source: which
// examiners can serve an examination, with their working hours and
// exceptions.
type ExaminerRepository interface {
	// GetForExamination returns examiners matching the examination's
	// specialty and region, in roster order. Empty filters match all.
	GetForExamination(ctx context.Context, specialty, region string) ([]models.Examiner, error)
	GetByID(ctx context.Context, id string) (*models.Examiner, error)
	Upsert(ctx context.Context, examiner models.Examiner) error
}

type mongoExaminerRepo struct {
	coll *mongo.Collection
}

// NewMongoExaminerRepo constructs a MongoDB-backed ExaminerRepository.
func NewMongoExaminerRepo() ExaminerRepository {
	r := &mongoExaminerRepo{
		coll: database.DB().Collection("examiners"),
	}
	r.ensureIndexes()
	return r
}
