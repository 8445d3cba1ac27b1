package examRepo

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

func (r *mongoExamRepo) GetByID(ctx context.Context, id string) (*models.Examination, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exam models.Examination
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&exam)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("examination %s not found", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch examination %s: %w", id, err)
	}
	return &exam, nil
}

func (r *mongoExamRepo) Upsert(ctx context.Context, exam models.Examination) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Update().SetUpsert(true)
	_, err := r.coll.UpdateOne(ctx, bson.M{"id": exam.ID}, bson.M{"$set": exam}, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert examination %s: %w", exam.ID, err)
	}
	return nil
}

func (r *mongoExamRepo) SetAppointment(ctx context.Context, examID string, appt models.SelectedAppointment, booking models.ExistingBooking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"appointment": appt,
		"booking":     booking,
	}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": examID}, update)
	if err != nil {
		return fmt.Errorf("failed to set appointment on examination %s: %w", examID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("examination %s not found", examID)
	}
	return nil
}

func (r *mongoExamRepo) ensureIndexes() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "claimantId", Value: 1}}},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexes); err != nil {
		log.Printf("examination indexes: %v", err)
	}
}
