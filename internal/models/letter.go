package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MaxLetterLength bounds letter text in characters (runes). The bound is a
// hard write contract: oversize letters are rejected, never truncated.
const MaxLetterLength = 1000

// Letter is a free-text note saved from the creative studio.
// Not editable after creation.
type Letter struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Namespace  string             `bson:"namespace" json:"-"`
	IdentityID string             `bson:"identity_id" json:"-"`
	Text       string             `bson:"text" json:"text"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
