package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	// IdentityKindAnonymous is the default identity created at first visit.
	IdentityKindAnonymous = "anonymous"
	// IdentityKindToken marks identities created by exchanging a
	// provisioned one-time access token.
	IdentityKindToken = "token"
)

// Identity is the anonymous or token-derived user handle that namespaces all
// persisted documents. Stored in PostgreSQL; never deleted by the app.
type Identity struct {
	ID         uuid.UUID `json:"id"`
	Kind       string    `json:"kind"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}
