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

// maxDrawingBytes caps a decoded canvas snapshot at 2 MB.
const maxDrawingBytes = 2 << 20

type CreateDrawingRequest struct {
	ImageData string `json:"image_data"`
}

type CreateDrawingResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Drawing *models.Drawing `json:"drawing,omitempty"`
}

type GetDrawingsResponse struct {
	Success  bool             `json:"success"`
	Message  string           `json:"message,omitempty"`
	Drawings []models.Drawing `json:"drawings"`
	Total    int              `json:"total"`
}

// CreateDrawing saves one finished canvas snapshot. The payload is an opaque
// bitmap data URI; stroke capture happens entirely on the client.
func CreateDrawing(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreateDrawingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateDrawingResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := utils.ValidateImageDataURI("image_data", req.ImageData, maxDrawingBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, CreateDrawingResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	drawing := models.Drawing{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		ImageData:  req.ImageData,
		CreatedAt:  time.Now().UTC(),
	}

	if err := services.InsertRecord(ctx, drawing.IdentityID, services.ResourceDrawings, drawing); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreateDrawingResponse{
			Success: false,
			Message: "Failed to save drawing",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreateDrawingResponse{
		Success: true,
		Message: "Drawing saved",
		Drawing: &drawing,
	})
}

// GetDrawings lists the caller's drawings in creation order.
func GetDrawings(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	drawings := []models.Drawing{}
	if err := services.ListRecords(ctx, identityID.String(), services.ResourceDrawings, &drawings); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetDrawingsResponse{
			Success:  false,
			Drawings: []models.Drawing{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetDrawingsResponse{
		Success:  true,
		Drawings: drawings,
		Total:    len(drawings),
	})
}
