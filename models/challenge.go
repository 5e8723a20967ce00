package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Challenge is a named photo prompt scoped to one album.
type Challenge struct {
	ID          primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	AlbumID     string             `json:"albumId" bson:"albumId"`
	IsEditing   bool               `json:"isEditing" bson:"isEditing"`
	DateCreated time.Time          `json:"datecreated" bson:"datecreated"`
}
