package models

import "time"

// DaysCounter is the singleton start-date setting behind the day counter.
// At most one per identity; overwritten on save, never appended. Absence
// means the counter is unset, which the UI shows as "not yet set" rather
// than zero days.
type DaysCounter struct {
	Namespace  string    `bson:"namespace" json:"-"`
	IdentityID string    `bson:"identity_id" json:"-"`
	StartDate  time.Time `bson:"start_date" json:"start_date"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
	CreatedAt  time.Time `bson:"created_at,omitempty" json:"-"`
}
