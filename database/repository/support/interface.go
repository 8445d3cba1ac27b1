package supportRepo

import (
	"context"

	"medexam/database"
	"medexam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SupportRepository supplies interpreter/chaperone/transporter
// availability, grouped by the provider organisations the candidate
// examiners belong to.
type SupportRepository interface {
	GetByProviderGroups(ctx context.Context, providerIDs []string) ([]models.SupportProvider, error)
	Upsert(ctx context.Context, provider models.SupportProvider) error
}

type mongoSupportRepo struct {
	coll *mongo.Collection
}

// NewMongoSupportRepo constructs a MongoDB-backed SupportRepository.
func NewMongoSupportRepo() SupportRepository {
	r := &mongoSupportRepo{
		coll: database.DB().Collection("supportProviders"),
	}
	r.ensureIndexes()
	return r
}
