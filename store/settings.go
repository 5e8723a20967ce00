package store

import (
	"context"
	"time"

	"album-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (m *Mongo) FindSettingsByUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error) {
	settings := models.Settings{}
	err := m.settings.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &settings, nil
}

// UpsertSettings replaces the account's settings document wholesale,
// creating it on first save.
func (m *Mongo) UpsertSettings(ctx context.Context, settings *models.Settings) (*models.Settings, error) {
	settings.UpdatedAt = time.Now()

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	update := bson.M{"$set": bson.M{
		"userId":       settings.UserID,
		"albumTitle":   settings.AlbumTitle,
		"eventDate":    settings.EventDate,
		"greetingText": settings.GreetingText,
		"permissions":  settings.Permissions,
		"theme":        settings.Theme,
		"updatedAt":    settings.UpdatedAt,
	}}

	saved := models.Settings{}
	err := m.settings.FindOneAndUpdate(ctx, bson.M{"userId": settings.UserID}, update, opts).Decode(&saved)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (m *Mongo) DeleteSettings(ctx context.Context, userID primitive.ObjectID) error {
	_, err := m.settings.DeleteOne(ctx, bson.M{"userId": userID})
	return err
}
