package handlers

import (
	"net/http"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
)

type ScheduleResponse struct {
	Success bool          `json:"success"`
	Games   []models.Game `json:"games"`
}

// GetSchedule serves the synthesized fixture list. No auth: the schedule is
// the same for everyone and nothing is persisted. "Notify me" on the
// schedule page stays a client-side toast; there is no delivery channel.
func GetSchedule(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ScheduleResponse{
		Success: true,
		Games:   services.UpcomingFixtures(time.Now().UTC()),
	})
}
