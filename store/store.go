// Package store wraps all persistence. Controllers depend on the
// interfaces here so handler logic stays testable with in-memory fakes.
package store

import (
	"context"
	"time"

	"album-service/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AccountStore interface {
	CreateAccount(ctx context.Context, account *models.Account) error
	FindAccountByID(ctx context.Context, id primitive.ObjectID) (*models.Account, error)
	FindAccountByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByAlbumToken(ctx context.Context, token string) (*models.Account, error)
	// FindByAlbumTokenAndAlbum resolves a guest token only when it belongs
	// to the given album. Used for tenant checks on list requests.
	FindByAlbumTokenAndAlbum(ctx context.Context, token, albumID string) (*models.Account, error)
	AdjustMediaCount(ctx context.Context, id primitive.ObjectID, mediaType string, delta int) error
	SetProfilePicURL(ctx context.Context, id primitive.ObjectID, url string) error
	ApplyPackage(ctx context.Context, id primitive.ObjectID, packageID uint, expiresAt time.Time) error
}

type MediaStore interface {
	InsertMedia(ctx context.Context, media *models.AlbumMedia) error
	FindMediaByID(ctx context.Context, id primitive.ObjectID) (*models.AlbumMedia, error)
	ListMediaByAlbum(ctx context.Context, albumID string, page, limit int64) ([]models.AlbumMedia, int64, error)
	DeleteMedia(ctx context.Context, id primitive.ObjectID) error
	// ToggleLike adds the identifier to the likes set if absent, removes it
	// if present, atomically per call. Returns whether the media is now
	// liked by the identifier and the resulting like count.
	ToggleLike(ctx context.Context, id primitive.ObjectID, identifier string) (bool, int, error)
	AttachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error
	DetachComment(ctx context.Context, mediaID, commentID primitive.ObjectID) error
}

type ChallengeStore interface {
	InsertChallenge(ctx context.Context, challenge *models.Challenge) error
	ListChallengesByAlbum(ctx context.Context, albumID string) ([]models.Challenge, error)
	DeleteChallenge(ctx context.Context, id primitive.ObjectID) (*models.Challenge, error)
}

type SettingsStore interface {
	FindSettingsByUser(ctx context.Context, userID primitive.ObjectID) (*models.Settings, error)
	UpsertSettings(ctx context.Context, settings *models.Settings) (*models.Settings, error)
	DeleteSettings(ctx context.Context, userID primitive.ObjectID) error
}

type CommentStore interface {
	InsertComment(ctx context.Context, comment *models.Comment) error
	FindCommentByID(ctx context.Context, id primitive.ObjectID) (*models.Comment, error)
	ListCommentsByAlbum(ctx context.Context, albumID string) ([]models.Comment, error)
	DeleteComment(ctx context.Context, id primitive.ObjectID) error
}

// Mongo bundles the MongoDB-backed implementations of the stores above.
type Mongo struct {
	accounts   *mongo.Collection
	media      *mongo.Collection
	challenges *mongo.Collection
	settings   *mongo.Collection
	comments   *mongo.Collection
}

func NewMongo(client *mongo.Client, dbName string) *Mongo {
	db := client.Database(dbName)
	return &Mongo{
		accounts:   db.Collection("accounts"),
		media:      db.Collection("album_media"),
		challenges: db.Collection("challenges"),
		settings:   db.Collection("settings"),
		comments:   db.Collection("comments"),
	}
}
