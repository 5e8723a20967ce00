package store

import (
	"context"
	"time"

	"album-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) InsertComment(ctx context.Context, comment *models.Comment) error {
	if comment.DateCreated.IsZero() {
		comment.DateCreated = time.Now()
	}
	res, err := m.comments.InsertOne(ctx, comment)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		comment.ID = oid
	}
	return nil
}

func (m *Mongo) FindCommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error) {
	comment := models.Comment{}
	err := m.comments.FindOne(ctx, bson.M{"_id": id}).Decode(&comment)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &comment, nil
}

func (m *Mongo) ListCommentsByAlbum(ctx context.Context, albumID string) ([]models.Comment, error) {
	sortByDateCreated := options.Find().SetSort(bson.D{{Key: "datecreated", Value: -1}})
	cur, err := m.comments.Find(ctx, bson.M{"albumId": albumID}, sortByDateCreated)
	if err != nil {
		return nil, err
	}
	comments := []models.Comment{}
	if err := cur.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

func (m *Mongo) DeleteComment(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.comments.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapNoDocuments(mongo.ErrNoDocuments)
	}
	return nil
}
