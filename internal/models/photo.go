package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Photo is one gallery image, encoded client-side as a data URI. When the
// Cloudinary mirror is configured, URL also holds the hosted copy.
// Append-only; displayed in insertion order.
type Photo struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Namespace  string             `bson:"namespace" json:"-"`
	IdentityID string             `bson:"identity_id" json:"-"`
	ImageData  string             `bson:"image_data,omitempty" json:"image_data,omitempty"`
	URL        string             `bson:"url,omitempty" json:"url,omitempty"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
