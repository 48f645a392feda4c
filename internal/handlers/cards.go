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

type CreateCardRequest struct {
	Text       string `json:"text"`
	Background string `json:"background"`
}

type CreateCardResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Card    *models.Card `json:"card,omitempty"`
}

type GetCardsResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Cards   []models.Card `json:"cards"`
	Total   int           `json:"total"`
}

type CardTemplatesResponse struct {
	Success   bool                  `json:"success"`
	Templates []models.CardTemplate `json:"templates"`
}

// CreateCard saves one card: non-empty text plus a valid hex background.
func CreateCard(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateCardResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := utils.ValidateText("text", req.Text, models.MaxLetterLength); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateCardResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}
	if err := utils.ValidateHexColor("background", req.Background); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateCardResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	card := models.Card{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		Text:       req.Text,
		Background: req.Background,
		CreatedAt:  time.Now().UTC(),
	}

	if err := services.InsertRecord(ctx, card.IdentityID, services.ResourceCards, card); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateCardResponse{
			Success: false,
			Message: "Failed to save card",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateCardResponse{
		Success: true,
		Message: "Card saved",
		Card:    &card,
	})
}

// GetCards lists the caller's cards in creation order.
func GetCards(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cards := []models.Card{}
	if err := services.ListRecords(ctx, identityID.String(), services.ResourceCards, &cards); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetCardsResponse{
			Success: false,
			Cards:   []models.Card{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetCardsResponse{
		Success: true,
		Cards:   cards,
		Total:   len(cards),
	})
}

// GetCardTemplates serves the canonical template set. Applying one on the
// client fully overwrites the current text and color.
func GetCardTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, CardTemplatesResponse{
		Success:   true,
		Templates: models.CardTemplates(),
	})
}
