package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

const (
	OrientationLandscape = "landscape"
	OrientationPortrait  = "portrait"
	OrientationSquare    = "square"
)

// AlbumMedia is one uploaded photo or video. AlbumID is a denormalized
// string and acts as the tenant-partition key; storage keys for the
// original and thumbnail can always be rebuilt from UserID, AlbumID and
// the URL's trailing filename.
type AlbumMedia struct {
	ID               primitive.ObjectID   `json:"_id,omitempty" bson:"_id,omitempty"`
	MediaURL         string               `json:"mediaUrl" bson:"mediaUrl"`
	ThumbnailURL     string               `json:"thumbnailUrl" bson:"thumbnailUrl"`
	MediaType        string               `json:"mediaType" bson:"mediaType"`
	AlbumID          string               `json:"albumId" bson:"albumId"`
	UserID           primitive.ObjectID   `json:"userId" bson:"userId"`
	UploaderName     string               `json:"uploaderName,omitempty" bson:"uploaderName,omitempty"`
	UploaderUsername string               `json:"uploaderUsername,omitempty" bson:"uploaderUsername,omitempty"`
	ChallengeTitle   string               `json:"challengeTitle,omitempty" bson:"challengeTitle,omitempty"`
	GreetingText     string               `json:"guestGreetingText,omitempty" bson:"guestGreetingText,omitempty"`
	Orientation      string               `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Likes            []string             `json:"likes" bson:"likes"`
	Comments         []primitive.ObjectID `json:"comments" bson:"comments"`
	CreatedAt        time.Time            `json:"createdAt" bson:"createdAt"`
}
