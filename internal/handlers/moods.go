package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
)

type CreateMoodRequest struct {
	Label string `json:"label"`
}

type CreateMoodResponse struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Mood    *models.MoodEntry `json:"mood,omitempty"`
}

type GetMoodsResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message,omitempty"`
	Current string             `json:"current,omitempty"`
	Labels  []string           `json:"labels"`
	Moods   []models.MoodEntry `json:"moods"`
	Total   int                `json:"total"`
}

// CreateMood records one mood button press. The label must belong to the
// closed set; anything else is rejected.
func CreateMood(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreateMoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateMoodResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if !models.IsValidMoodLabel(req.Label) {
		writeJSON(w, http.StatusBadRequest, CreateMoodResponse{
			Success: false,
			Message: "Unknown mood",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	mood := models.MoodEntry{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		Label:      models.NormalizeMoodLabel(req.Label),
		CreatedAt:  time.Now().UTC(),
	}

	if err := services.InsertRecord(ctx, mood.IdentityID, services.ResourceMoods, mood); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateMoodResponse{
			Success: false,
			Message: "Failed to record mood",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateMoodResponse{
		Success: true,
		Message: "Mood recorded",
		Mood:    &mood,
	})
}

// GetMoods lists the caller's mood history newest-first, plus the current
// mood indicator (the most recent entry's label).
func GetMoods(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	moods := []models.MoodEntry{}
	if err := services.ListRecords(ctx, identityID.String(), services.ResourceMoods, &moods); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetMoodsResponse{
			Success: false,
			Labels:  models.MoodLabels,
			Moods:   []models.MoodEntry{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetMoodsResponse{
		Success: true,
		Current: currentMoodLabel(moods),
		Labels:  models.MoodLabels,
		Moods:   moods,
		Total:   len(moods),
	})
}

// currentMoodLabel picks the latest label from a newest-first history.
func currentMoodLabel(moods []models.MoodEntry) string {
	if len(moods) == 0 {
		return ""
	}
	return moods[0].Label
}
