package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment belongs to one media item; Author is either a registered account
// id (hex) or a free-text guest name.
type Comment struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	MediaID     primitive.ObjectID `json:"mediaId" bson:"mediaId"`
	AlbumID     string             `json:"albumId" bson:"albumId"`
	Author      string             `json:"author" bson:"author"`
	Text        string             `json:"text" bson:"text"`
	DateCreated time.Time          `json:"datecreated" bson:"datecreated"`
}

type CommentBody struct {
	Author string `json:"author"`
	Text   string `json:"text"`
}
