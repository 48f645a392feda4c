package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/pkg/utils"
)

type CreateLetterRequest struct {
	Text string `json:"text"`
}

type CreateLetterResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Letter  *models.Letter `json:"letter,omitempty"`
}

type GetLettersResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message,omitempty"`
	Letters []models.Letter `json:"letters"`
	Total   int             `json:"total"`
}

// CreateLetter saves one letter. Empty text is rejected, and the 1000
// character bound is enforced here at the write boundary, not just in the
// input widget: oversize letters never reach the store.
func CreateLetter(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreateLetterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateLetterResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := utils.ValidateText("text", req.Text, models.MaxLetterLength); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateLetterResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	letter := models.Letter{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		Text:       req.Text,
		CreatedAt:  time.Now().UTC(),
	}

	if err := services.InsertRecord(ctx, letter.IdentityID, services.ResourceLetters, letter); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateLetterResponse{
			Success: false,
			Message: "Failed to save letter",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateLetterResponse{
		Success: true,
		Message: "Letter saved",
		Letter:  &letter,
	})
}

// GetLetters lists the caller's letters in creation order.
func GetLetters(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	letters := []models.Letter{}
	if err := services.ListRecords(ctx, identityID.String(), services.ResourceLetters, &letters); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetLettersResponse{
			Success: false,
			Letters: []models.Letter{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetLettersResponse{
		Success: true,
		Letters: letters,
		Total:   len(letters),
	})
}
