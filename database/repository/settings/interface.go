package settingsRepo

import (
	"context"

	"medexam/database"
	"medexam/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// SettingsRepository resolves the deployment's availability settings.
// Get returns (nil, nil) when no settings document exists; the caller
// applies its documented fallback.
type SettingsRepository interface {
	Get(ctx context.Context) (*models.AvailabilitySettings, error)
	Put(ctx context.Context, settings models.AvailabilitySettings) error
}

type mongoSettingsRepo struct {
	coll *mongo.Collection
}

// NewMongoSettingsRepo constructs a MongoDB-backed SettingsRepository.
func NewMongoSettingsRepo() SettingsRepository {
	return &mongoSettingsRepo{
		coll: database.DB().Collection("availabilitySettings"),
	}
}
