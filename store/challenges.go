package store

import (
	"context"
	"time"

	"album-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) InsertChallenge(ctx context.Context, challenge *models.Challenge) error {
	if challenge.DateCreated.IsZero() {
		challenge.DateCreated = time.Now()
	}
	res, err := m.challenges.InsertOne(ctx, challenge)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		challenge.ID = oid
	}
	return nil
}

func (m *Mongo) ListChallengesByAlbum(ctx context.Context, albumID string) ([]models.Challenge, error) {
	sortByDateCreated := options.Find().SetSort(bson.D{{Key: "datecreated", Value: -1}})
	cur, err := m.challenges.Find(ctx, bson.M{"albumId": albumID}, sortByDateCreated)
	if err != nil {
		return nil, err
	}
	challenges := []models.Challenge{}
	if err := cur.All(ctx, &challenges); err != nil {
		return nil, err
	}
	return challenges, nil
}

func (m *Mongo) DeleteChallenge(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error) {
	challenge := models.Challenge{}
	err := m.challenges.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&challenge)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &challenge, nil
}
