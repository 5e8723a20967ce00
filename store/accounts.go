package store

import (
	"context"
	"errors"
	"time"

	"album-service/apperrors"
	"album-service/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (m *Mongo) CreateAccount(ctx context.Context, account *models.Account) error {
	now := time.Now()
	account.CreatedAt = now
	account.UpdatedAt = now
	res, err := m.accounts.InsertOne(ctx, account)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		account.ID = oid
	}
	return nil
}

func (m *Mongo) FindAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error) {
	account := models.Account{}
	err := m.accounts.FindOne(ctx, bson.M{"_id": id}).Decode(&account)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &account, nil
}

func (m *Mongo) FindAccountByEmail(ctx context.Context, email string) (*models.Account, error) {
	account := models.Account{}
	err := m.accounts.FindOne(ctx, bson.M{"email": email}).Decode(&account)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &account, nil
}

func (m *Mongo) FindByAlbumToken(ctx context.Context, token string) (*models.Account, error) {
	account := models.Account{}
	err := m.accounts.FindOne(ctx, bson.M{"albumToken": token}).Decode(&account)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &account, nil
}

func (m *Mongo) FindByAlbumTokenAndAlbum(ctx context.Context, token, albumID string) (*models.Account, error) {
	account := models.Account{}
	err := m.accounts.FindOne(ctx, bson.M{"albumToken": token, "albumId": albumID}).Decode(&account)
	if err != nil {
		return nil, mapNoDocuments(err)
	}
	return &account, nil
}

func (m *Mongo) AdjustMediaCount(ctx context.Context, id primitive.ObjectID, mediaType string, delta int) error {
	field := "photoCount"
	if mediaType == models.MediaTypeVideo {
		field = "videoCount"
	}
	update := bson.M{
		"$inc": bson.M{field: delta},
		"$set": bson.M{"updatedAt": time.Now()},
	}
	_, err := m.accounts.UpdateOne(ctx, bson.M{"_id": id}, update)
	return err
}

func (m *Mongo) SetProfilePicURL(ctx context.Context, id primitive.ObjectID, url string) error {
	update := bson.M{"$set": bson.M{
		"profilePicUrl": url,
		"updatedAt":     time.Now(),
	}}
	res, err := m.accounts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (m *Mongo) ApplyPackage(ctx context.Context, id primitive.ObjectID, packageID uint, expiresAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"package":                 packageID,
		"packageExpiryDate":       expiresAt,
		"photoCount":              0,
		"videoCount":              0,
		"albumCount":              0,
		"fullAlbumDownloadsCount": 0,
		"updatedAt":               time.Now(),
	}}
	res, err := m.accounts.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func mapNoDocuments(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.ErrNotFound
	}
	return err
}
