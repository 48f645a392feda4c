package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
	"go.mongodb.org/mongo-driver/bson"
)

const startDateLayout = "2006-01-02"

type SetDaysCounterRequest struct {
	StartDate string `json:"start_date"` // "2006-01-02"
}

type SetDaysCounterResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// GetDaysCounterResponse distinguishes "never set" from zero days: when Set
// is false the UI shows "not yet set", never "0 dias".
type GetDaysCounterResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message,omitempty"`
	Set       bool   `json:"set"`
	StartDate string `json:"start_date,omitempty"`
	Days      int    `json:"days"`
	Label     string `json:"label,omitempty"`
}

// SetDaysCounter overwrites the singleton start-date setting.
func SetDaysCounter(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	var req SetDaysCounterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, SetDaysCounterResponse{
			Success: false,
			Message: "Invalid request body",
		})
		return
	}

	startDate, err := time.ParseInLocation(startDateLayout, req.StartDate, time.UTC)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, SetDaysCounterResponse{
			Success: false,
			Message: "Invalid start date, expected YYYY-MM-DD",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	fields := bson.M{
		"namespace":   services.Namespace(),
		"identity_id": identityID.String(),
		"start_date":  startDate,
		"updated_at":  time.Now().UTC(),
	}

	if err := services.SetSingletonRecord(ctx, identityID.String(), services.ResourceDaysCounter, fields); err != nil {
		writeJSON(w, http.StatusInternalServerError, SetDaysCounterResponse{
			Success: false,
			Message: "Failed to save start date",
		})
		return
	}

	writeJSON(w, http.StatusOK, SetDaysCounterResponse{
		Success: true,
		Message: "Start date saved",
	})
}

// GetDaysCounter returns the derived day count, or the unset state when no
// start date was ever saved.
func GetDaysCounter(w http.ResponseWriter, r *http.Request) {
	identityID, ok := requireIdentity(r)
	if !ok {
		writeUnauthorized(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	var counter models.DaysCounter
	found, err := services.GetSingletonRecord(ctx, identityID.String(), services.ResourceDaysCounter, &counter)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, GetDaysCounterResponse{
			Success: false,
			Message: "Failed to load counter",
		})
		return
	}

	if !found {
		writeJSON(w, http.StatusOK, GetDaysCounterResponse{
			Success: true,
			Set:     false,
		})
		return
	}

	days := elapsedDays(counter.StartDate, time.Now().UTC())
	writeJSON(w, http.StatusOK, GetDaysCounterResponse{
		Success:   true,
		Set:       true,
		StartDate: counter.StartDate.Format(startDateLayout),
		Days:      days,
		Label:     fmt.Sprintf("%d dias", days),
	})
}

// elapsedDays is the absolute distance between the two calendar dates, in
// whole days, with any partial day rounded up.
func elapsedDays(start, today time.Time) int {
	diff := dateOnly(today).Sub(dateOnly(start))
	if diff < 0 {
		diff = -diff
	}
	return int(math.Ceil(diff.Hours() / 24))
}

func dateOnly(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
