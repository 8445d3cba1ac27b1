package examinerRepo

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"medexam/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoExaminerRepo) GetForExamination(ctx context.Context, specialty, region string) ([]models.Examiner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if specialty != "" {
		filter["specialty"] = specialty
	}
	if region != "" {
		filter["region"] = region
	}

	// Roster order is the display order downstream; keep it stable.
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query examiners: %w", err)
	}
	defer cursor.Close(ctx)

	var examiners []models.Examiner
	if err := cursor.All(ctx, &examiners); err != nil {
		return nil, fmt.Errorf("failed to decode examiners: %w", err)
	}
	return examiners, nil
}

func (r *mongoExaminerRepo) GetByID(ctx context.Context, id string) (*models.Examiner, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var examiner models.Examiner
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&examiner)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("examiner %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch examiner %s: %w", id, err)
	}
	return &examiner, nil
}

func (r *mongoExaminerRepo) Upsert(ctx context.Context, examiner models.Examiner) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": examiner.ID}, bson.M{"$set": examiner}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert examiner %s: %w", examiner.ID, err)
	}
	return nil
}

// ensureIndexes creates indexes for the eligibility query fields.
func (r *mongoExaminerRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "specialty", Value: 1}, {Key: "region", Value: 1}}},
		{Keys: bson.D{{Key: "providerId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("examiner indexes: %v", err)
	}
}
