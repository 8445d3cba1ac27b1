package settingsRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"medexam/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// A single well-known document holds the active settings.
const settingsDocID = "availability"

type settingsDoc struct {
	ID       string                      `bson:"id"`
	Settings models.AvailabilitySettings `bson:"settings"`
}

func (r *mongoSettingsRepo) Get(ctx context.Context) (*models.AvailabilitySettings, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var doc settingsDoc
	err := r.coll.FindOne(ctx, bson.M{"id": settingsDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability settings: %w", err)
	}
	return &doc.Settings, nil
}

func (r *mongoSettingsRepo) Put(ctx context.Context, settings models.AvailabilitySettings) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": settingsDoc{ID: settingsDocID, Settings: settings}}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": settingsDocID}, update, opts); err != nil {
		return fmt.Errorf("failed to store availability settings: %w", err)
	}
	return nil
}
