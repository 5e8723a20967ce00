package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleAdmin = "admin"
	RoleGuest = "guest"
)

// Account is a registered principal. Every account owns exactly one album,
// identified by AlbumID; AlbumToken is the opaque secret handed to guests.
type Account struct {
	ID               primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Email            string             `json:"email" bson:"email"`
	Password         string             `json:"-" bson:"password"`
	Name             string             `json:"name" bson:"name"`
	Role             string             `json:"role" bson:"role"`
	IsVerified       bool               `json:"isVerified" bson:"isVerified"`
	AlbumID          string             `json:"albumId" bson:"albumId"`
	AlbumToken       string             `json:"albumToken,omitempty" bson:"albumToken"`
	ProfilePicURL    string             `json:"profilePicUrl,omitempty" bson:"profilePicUrl,omitempty"`
	PackageID        uint               `json:"package,omitempty" bson:"package,omitempty"`
	PackageExpiresAt time.Time          `json:"packageExpiryDate,omitempty" bson:"packageExpiryDate,omitempty"`
	PhotoCount       int                `json:"photoCount" bson:"photoCount"`
	VideoCount       int                `json:"videoCount" bson:"videoCount"`
	AlbumCount       int                `json:"albumCount" bson:"albumCount"`
	FullAlbumDownloadsCount int         `json:"fullAlbumDownloadsCount" bson:"fullAlbumDownloadsCount"`
	GuestCount       int                `json:"guestCount" bson:"guestCount"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`
}
