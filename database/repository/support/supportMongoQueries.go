package supportRepo

import (
	"context"
	"fmt"
	"log"
	"time"

	"medexam/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoSupportRepo) GetByProviderGroups(ctx context.Context, providerIDs []string) ([]models.SupportProvider, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"providerId": bson.M{"$in": providerIDs}}
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query support providers: %w", err)
	}
	defer cursor.Close(ctx)

	var providers []models.SupportProvider
	if err := cursor.All(ctx, &providers); err != nil {
		return nil, fmt.Errorf("failed to decode support providers: %w", err)
	}
	return providers, nil
}

func (r *mongoSupportRepo) Upsert(ctx context.Context, provider models.SupportProvider) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": provider.ID}, bson.M{"$set": provider}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert support provider %s: %w", provider.ID, err)
	}
	return nil
}

func (r *mongoSupportRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "providerId", Value: 1}, {Key: "kind", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("support provider indexes: %v", err)
	}
}
