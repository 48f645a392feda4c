package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidMoodLabel(t *testing.T) {
	for _, label := range MoodLabels {
		assert.True(t, IsValidMoodLabel(label), label)
	}

	// Closed set: accepted case-insensitively, nothing outside it.
	assert.True(t, IsValidMoodLabel("Feliz"))
	assert.True(t, IsValidMoodLabel("  TRISTE "))
	assert.False(t, IsValidMoodLabel("radiante"))
	assert.False(t, IsValidMoodLabel(""))
}

func TestNormalizeMoodLabel(t *testing.T) {
	assert.Equal(t, "feliz", NormalizeMoodLabel(" Feliz "))
	assert.Equal(t, "triste", NormalizeMoodLabel("TRISTE"))
}

func TestCardTemplatesAreValid(t *testing.T) {
	templates := CardTemplates()
	assert.NotEmpty(t, templates)

	seen := map[string]bool{}
	for _, tpl := range templates {
		assert.NotEmpty(t, tpl.Name)
		assert.NotEmpty(t, tpl.Text, tpl.Name)
		assert.Regexp(t, `^#[0-9a-fA-F]{6}$`, tpl.Background, tpl.Name)
		assert.False(t, seen[tpl.Name], "duplicate template name %s", tpl.Name)
		seen[tpl.Name] = true
	}
}
