package store

import (
	"context"
	"errors"
	"time"

	"album-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) InsertMedia(ctx context.Context, media *models.AlbumMedia) error {
	if media.CreatedAt.IsZero() {
		media.CreatedAt = time.Now()
	}
	if media.Likes == nil {
		media.Likes = []string{}
	}
	if media.Comments == nil {
		media.Comments = []primitive.ObjectID{}
	}
	res, err := m.media.InsertOne(ctx, media)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		media.ID = oid
	}
	return nil
}

func (m *Mongo) FindMediaByID(ctx context.Context, id primitive.ObjectID) (*models.AlbumMedia, error) {
	media := models.AlbumMedia{}
	err := m.media.FindOne(ctx, bson.M{"_id": id}).Decode(&media)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &media, nil
}

func (m *Mongo) ListMediaByAlbum(ctx context.Context, albumID string, page, limit int64) ([]models.AlbumMedia, int64, error) {
	filter := bson.M{"albumId": albumID}

	total, err := m.media.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	findOpts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)

	cur, err := m.media.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, 0, err
	}
	items := []models.AlbumMedia{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (m *Mongo) DeleteMedia(ctx context.Context, id primitive.ObjectID) error {
	res, err := m.media.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mapNoDocuments(mongo.ErrNoDocuments)
	}
	return nil
}

// ToggleLike uses pull-then-addToSet so concurrent toggles never lose an
// update the way a read-modify-write would.
func (m *Mongo) ToggleLike(ctx context.Context, id primitive.ObjectID, identifier string) (bool, int, error) {
	after := options.FindOneAndUpdate().SetReturnDocument(options.After)

	media := models.AlbumMedia{}
	err := m.media.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "likes": identifier},
		bson.M{"$pull": bson.M{"likes": identifier}},
		after,
	).Decode(&media)
	if err == nil {
		return false, len(media.Likes), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return false, 0, err
	}

	err = m.media.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$addToSet": bson.M{"likes": identifier}},
		after,
	).Decode(&media)
	if err != nil {
		return false, 0, mapNoDocuments(err)
	}
	return true, len(media.Likes), nil
}

func (m *Mongo) AttachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error {
	_, err := m.media.UpdateOne(ctx,
		bson.M{"_id": mediaID},
		bson.M{"$addToSet": bson.M{"comments": commentID}},
	)
	return err
}

func (m *Mongo) DetachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error {
	_, err := m.media.UpdateOne(ctx,
		bson.M{"_id": mediaID},
		bson.M{"$pull": bson.M{"comments": commentID}},
	)
	return err
}
