package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
)

const (
	// SessionDuration keeps an anonymous identity stable for 30 days.
	SessionDuration = 30 * 24 * time.Hour
	// SessionKeyPrefix is the Redis key prefix for sessions
	SessionKeyPrefix = "session:"
	// IdentitySessionKeyPrefix is the Redis key prefix for identity->session mapping
	IdentitySessionKeyPrefix = "identity_session:"
)

// CreateSession creates a new session for an identity and stores it in Redis.
// An existing session for the identity is invalidated first so the expiry
// timer restarts from now. Returns the session token.
func CreateSession(identityID uuid.UUID) (string, error) {
	InvalidateIdentitySessions(identityID)

	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	sessionToken := base64.URLEncoding.EncodeToString(tokenBytes)

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + sessionToken
	identityKey := IdentitySessionKeyPrefix + identityID.String()

	if err := database.RedisClient.Set(ctx, sessionKey, identityID.String(), SessionDuration).Err(); err != nil {
		return "", err
	}

	if err := database.RedisClient.Set(ctx, identityKey, sessionToken, SessionDuration).Err(); err != nil {
		return "", err
	}

	return sessionToken, nil
}

// ValidateSession checks a session token and returns the identity it belongs to.
func ValidateSession(sessionToken string) (uuid.UUID, bool, error) {
	if sessionToken == "" || database.RedisClient == nil {
		return uuid.Nil, false, nil
	}

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + sessionToken

	identityIDStr, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err != nil {
		return uuid.Nil, false, nil
	}

	identityID, err := uuid.Parse(identityIDStr)
	if err != nil {
		return uuid.Nil, false, err
	}

	return identityID, true, nil
}

// RefreshSession extends the session expiry by SessionDuration from now.
// Called when a client reuses its session at bootstrap.
func RefreshSession(sessionToken string) error {
	if sessionToken == "" {
		return fmt.Errorf("session token is empty")
	}

	ctx := context.Background()
	sessionKey := SessionKeyPrefix + sessionToken

	identityIDStr, err := database.RedisClient.Get(ctx, sessionKey).Result()
	if err != nil {
		return err
	}

	identityKey := IdentitySessionKeyPrefix + identityIDStr

	if err := database.RedisClient.Expire(ctx, sessionKey, SessionDuration).Err(); err != nil {
		return err
	}

	return database.RedisClient.Expire(ctx, identityKey, SessionDuration).Err()
}

// InvalidateIdentitySessions removes any session held by an identity.
func InvalidateIdentitySessions(identityID uuid.UUID) error {
	ctx := context.Background()
	identityKey := IdentitySessionKeyPrefix + identityID.String()

	sessionToken, err := database.RedisClient.Get(ctx, identityKey).Result()
	if err == nil && sessionToken != "" {
		database.RedisClient.Del(ctx, SessionKeyPrefix+sessionToken)
	}

	return database.RedisClient.Del(ctx, identityKey).Err()
}
