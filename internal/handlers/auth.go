package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
)

type ExchangeTokenRequest struct {
	Token string `json:"token"`
}

// AuthResponse carries the identity handle and session token back to the
// client. On failure the client is expected to fall back to a locally
// generated identifier and run in a degraded, non-persistent mode.
type AuthResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Identity *models.Identity `json:"identity,omitempty"`
	Token    string           `json:"token,omitempty"`
}

// AnonymousSignIn resolves the caller's identity: a request that already
// carries a valid session reuses its identity (and the session timer is
// refreshed); otherwise a fresh anonymous identity is minted.
func AnonymousSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if token := extractBearerToken(r.Header.Get("Authorization")); token != "" {
		if identityID, ok, err := services.ValidateSession(token); err == nil && ok {
			identity, err := services.GetIdentity(ctx, identityID)
			if err == nil {
				_ = services.RefreshSession(token)
				services.TouchIdentity(ctx, identityID)
				writeJSON(w, http.StatusOK, AuthResponse{
					Success:  true,
					Message:  "Session reused",
					Identity: identity,
					Token:    token,
				})
				return
			}
		}
	}

	identity, err := services.CreateAnonymousIdentity(ctx)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create identity",
		})
		return
	}

	sessionToken, err := services.CreateSession(identity.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create session",
		})
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success:  true,
		Message:  "Anonymous identity created",
		Identity: identity,
		Token:    sessionToken,
	})
}

// ExchangeToken trades an externally provisioned one-time access token for an
// identity and session.
func ExchangeToken(w http.ResponseWriter, r *http.Request) {
	var req ExchangeTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if req.Token == "" {
		writeJSON(w, http.StatusBadRequest, AuthResponse{
			Success: false,
			Message: "Token is required",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	identity, err := services.ExchangeAccessToken(ctx, req.Token)
	if err != nil {
		status := http.StatusUnauthorized
		message := "Invalid access token"
		if errors.Is(err, services.ErrAccessTokenUsed) {
			message = "Access token already used"
		} else if !errors.Is(err, services.ErrInvalidAccessToken) {
			status = http.StatusInternalServerError
			message = "Failed to exchange token"
		}
		writeJSON(w, status, AuthResponse{Success: false, Message: message})
		return
	}

	sessionToken, err := services.CreateSession(identity.ID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to create session",
		})
		return
	}

	writeJSON(w, http.StatusCreated, AuthResponse{
		Success:  true,
		Message:  "Token exchanged",
		Identity: identity,
		Token:    sessionToken,
	})
}

// GetMe is the ready/not-ready probe: it resolves the bearer token to its
// identity or answers 401.
func GetMe(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	identity, err := services.GetIdentity(ctx, identityID)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, AuthResponse{
			Success: false,
			Message: "Failed to load identity",
		})
		return
	}

	writeJSON(w, http.StatusOK, AuthResponse{Success: true, Identity: identity})
}
