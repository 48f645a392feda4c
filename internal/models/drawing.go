package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Drawing is a finished canvas snapshot saved from the drawing studio.
// The image is an opaque bitmap encoded as a data URI, not a stroke log.
// Append-only: never updated or deleted.
type Drawing struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Namespace  string             `bson:"namespace" json:"-"`
	IdentityID string             `bson:"identity_id" json:"-"`
	ImageData  string             `bson:"image_data" json:"image_data"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
