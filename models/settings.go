package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Settings is the one-per-account album configuration document. It is
// upserted as a whole on save.
type Settings struct {
	ID           primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	UserID       primitive.ObjectID `json:"userId" bson:"userId"`
	AlbumTitle   string             `json:"albumTitle" bson:"albumTitle"`
	EventDate    time.Time          `json:"eventDate,omitempty" bson:"eventDate,omitempty"`
	GreetingText string             `json:"greetingText,omitempty" bson:"greetingText,omitempty"`
	Permissions  GuestPermissions   `json:"permissions" bson:"permissions"`
	Theme        string             `json:"theme,omitempty" bson:"theme,omitempty"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// GuestPermissions are the per-feature flags for token holders.
type GuestPermissions struct {
	AllowImageUpload bool `json:"allowImageUpload" bson:"allowImageUpload"`
	AllowVideoUpload bool `json:"allowVideoUpload" bson:"allowVideoUpload"`
	AllowComments    bool `json:"allowComments" bson:"allowComments"`
	AllowDownloads   bool `json:"allowDownloads" bson:"allowDownloads"`
}
