package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/pkg/utils"
)

var (
	// ErrInvalidAccessToken is returned for malformed or unknown tokens.
	ErrInvalidAccessToken = errors.New("invalid access token")
	// ErrAccessTokenUsed is returned when a one-time token is replayed.
	ErrAccessTokenUsed = errors.New("access token already used")
)

// tokenUsedKeyPrefix guards one-time token exchange against replays that race
// the used_at update.
const tokenUsedKeyPrefix = "token_used:"

// CreateAnonymousIdentity mints a fresh anonymous identity.
func CreateAnonymousIdentity(ctx context.Context) (*models.Identity, error) {
	identity := &models.Identity{Kind: models.IdentityKindAnonymous}

	err := database.PostgresDB.QueryRowContext(ctx, `
		INSERT INTO identities (kind) VALUES ($1)
		RETURNING id, created_at, last_seen_at
	`, identity.Kind).Scan(&identity.ID, &identity.CreatedAt, &identity.LastSeenAt)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// GetIdentity loads one identity by id.
func GetIdentity(ctx context.Context, id uuid.UUID) (*models.Identity, error) {
	identity := &models.Identity{}

	err := database.PostgresDB.QueryRowContext(ctx, `
		SELECT id, kind, created_at, last_seen_at FROM identities WHERE id = $1
	`, id).Scan(&identity.ID, &identity.Kind, &identity.CreatedAt, &identity.LastSeenAt)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// TouchIdentity records activity on an identity. Best-effort.
func TouchIdentity(ctx context.Context, id uuid.UUID) {
	_, _ = database.PostgresDB.ExecContext(ctx, `
		UPDATE identities SET last_seen_at = NOW() WHERE id = $1
	`, id)
}

// ExchangeAccessToken trades a provisioned one-time token ("<id>.<secret>")
// for a fresh token-derived identity. The token is single-use: a Redis SETNX
// guard plus the used_at column make replays fail even across instances.
func ExchangeAccessToken(ctx context.Context, raw string) (*models.Identity, error) {
	tokenID, secret, ok := splitAccessToken(raw)
	if !ok {
		return nil, ErrInvalidAccessToken
	}

	var tokenHash string
	var usedAt sql.NullTime
	err := database.PostgresDB.QueryRowContext(ctx, `
		SELECT token_hash, used_at FROM access_tokens WHERE id = $1
	`, tokenID).Scan(&tokenHash, &usedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrInvalidAccessToken
	}
	if err != nil {
		return nil, err
	}
	if usedAt.Valid {
		return nil, ErrAccessTokenUsed
	}

	match, err := utils.VerifyAccessToken(secret, tokenHash)
	if err != nil || !match {
		return nil, ErrInvalidAccessToken
	}

	if database.RedisClient != nil {
		claimed, err := database.RedisClient.SetNX(ctx, tokenUsedKeyPrefix+tokenID.String(), "1", 24*time.Hour).Result()
		if err == nil && !claimed {
			return nil, ErrAccessTokenUsed
		}
	}

	identity := &models.Identity{Kind: models.IdentityKindToken}
	err = database.PostgresDB.QueryRowContext(ctx, `
		INSERT INTO identities (kind) VALUES ($1)
		RETURNING id, created_at, last_seen_at
	`, identity.Kind).Scan(&identity.ID, &identity.CreatedAt, &identity.LastSeenAt)
	if err != nil {
		return nil, err
	}

	_, err = database.PostgresDB.ExecContext(ctx, `
		UPDATE access_tokens SET used_at = NOW(), identity_id = $1 WHERE id = $2 AND used_at IS NULL
	`, identity.ID, tokenID)
	if err != nil {
		return nil, err
	}

	return identity, nil
}

// splitAccessToken parses the "<uuid>.<secret>" wire format.
func splitAccessToken(raw string) (uuid.UUID, string, bool) {
	parts := strings.SplitN(strings.TrimSpace(raw), ".", 2)
	if len(parts) != 2 || parts[1] == "" {
		return uuid.Nil, "", false
	}
	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, "", false
	}
	return id, parts[1], true
}
