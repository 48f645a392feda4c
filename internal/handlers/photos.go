package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/config"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/pkg/utils"
)

// maxPhotoBytes caps a decoded gallery image at 5 MB.
const maxPhotoBytes = 5 << 20

var mediaService *services.MediaService

// InitMediaService wires the optional Cloudinary mirror.
func InitMediaService(cfg *config.Config) error {
	service, err := services.NewMediaService(
		cfg.CloudinaryName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
	)
	if err != nil {
		return err
	}
	mediaService = service
	return nil
}

type CreatePhotoRequest struct {
	ImageData string `json:"image_data"`
}

type CreatePhotoResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Photo   *models.Photo `json:"photo,omitempty"`
}

type GetPhotosResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Photos  []models.Photo `json:"photos"`
	Total   int            `json:"total"`
}

// CreatePhoto saves one client-encoded image data URI. When the Cloudinary
// mirror is configured the hosted URL is stored alongside; a mirror failure
// does not fail the save.
func CreatePhoto(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req CreatePhotoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, CreatePhotoResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	if err := utils.ValidateImageDataURI("image_data", req.ImageData, maxPhotoBytes); err != nil {
		writeJSON(w, http.StatusBadRequest, CreatePhotoResponse{
			Success: false,
			Message: err.Error(),
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	photo := models.Photo{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		ImageData:  req.ImageData,
		CreatedAt:  time.Now().UTC(),
	}

	if mediaService != nil {
		url, err := mediaService.UploadDataURI(ctx, req.ImageData, services.Namespace()+"/photos")
		if err != nil {
			log.Printf("cloudinary mirror failed: %v", err)
		} else {
			photo.URL = url
		}
	}

	if err := services.InsertRecord(ctx, photo.IdentityID, services.ResourcePhotos, photo); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreatePhotoResponse{
			Success: false,
			Message: "Failed to save photo",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreatePhotoResponse{
		Success: true,
		Message: "Photo saved",
		Photo:   &photo,
	})
}

// UploadPhoto accepts a multipart image, pushes it to Cloudinary, and stores
// the hosted URL as the gallery record. Requires the mirror to be configured.
func UploadPhoto(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	if mediaService == nil {
		writeJSON(w, http.StatusServiceUnavailable, CreatePhotoResponse{
			Success: false,
			Message: "Photo uploads are not available",
		})
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		writeJSON(w, http.StatusBadRequest, CreatePhotoResponse{
			Success: false,
			Message: "Failed to parse form",
		})
		return
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, CreatePhotoResponse{
			Success: false,
			Message: "No file provided",
		})
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	url, err := mediaService.UploadFileFromHeader(ctx, fileHeader, services.Namespace()+"/photos")
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, CreatePhotoResponse{
			Success: false,
			Message: "Failed to upload photo",
		})
		return
	}

	photo := models.Photo{
		Namespace:  services.Namespace(),
		IdentityID: identityID.String(),
		URL:        url,
		CreatedAt:  time.Now().UTC(),
	}

	if err := services.InsertRecord(ctx, photo.IdentityID, services.ResourcePhotos, photo); err != nil {
		writeJSON(w, http.StatusInternalServerError, CreatePhotoResponse{
			Success: false,
			Message: "Failed to save photo",
		})
		return
	}

	writeJSON(w, http.StatusCreated, CreatePhotoResponse{
		Success: true,
		Message: "Photo uploaded",
		Photo:   &photo,
	})
}

// GetPhotos lists the caller's gallery in insertion order (newest last).
func GetPhotos(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	photos := []models.Photo{}
	if err := services.ListRecords(ctx, identityID.String(), services.ResourcePhotos, &photos); err != nil {
		writeJSON(w, http.StatusInternalServerError, GetPhotosResponse{
			Success: false,
			Photos:  []models.Photo{},
		})
		return
	}

	writeJSON(w, http.StatusOK, GetPhotosResponse{
		Success: true,
		Photos:  photos,
		Total:   len(photos),
	})
}
