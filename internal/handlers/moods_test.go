package handlers

import (
	"testing"
	"time"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestCurrentMoodLabel(t *testing.T) {
	assert.Empty(t, currentMoodLabel(nil))
	assert.Empty(t, currentMoodLabel([]models.MoodEntry{}))

	// Pressing "feliz" then "triste" yields a newest-first history with
	// triste above feliz; triste is the current mood.
	now := time.Now().UTC()
	history := []models.MoodEntry{
		{Label: "triste", CreatedAt: now},
		{Label: "feliz", CreatedAt: now.Add(-time.Minute)},
	}
	assert.Equal(t, "triste", currentMoodLabel(history))
}
