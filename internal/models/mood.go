package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodLabels is the closed set of moods the tracker accepts, in the order
// the mood buttons appear.
var MoodLabels = []string{
	"feliz",
	"animado",
	"apaixonado",
	"cansado",
	"triste",
	"ansioso",
}

// NormalizeMoodLabel lowercases and trims a label for closed-set matching.
func NormalizeMoodLabel(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// IsValidMoodLabel reports whether label belongs to the closed set.
func IsValidMoodLabel(label string) bool {
	label = NormalizeMoodLabel(label)
	for _, l := range MoodLabels {
		if l == label {
			return true
		}
	}
	return false
}

// MoodEntry records one mood button press. Append-only, listed newest-first.
type MoodEntry struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Namespace  string             `bson:"namespace" json:"-"`
	IdentityID string             `bson:"identity_id" json:"-"`
	Label      string             `bson:"label" json:"label"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
