package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractBearerToken(t *testing.T) {
	assert.Equal(t, "abc123", extractBearerToken("Bearer abc123"))
	assert.Equal(t, "abc123", extractBearerToken("bearer abc123"))
	assert.Empty(t, extractBearerToken(""))
	assert.Empty(t, extractBearerToken("abc123"))
	assert.Empty(t, extractBearerToken("Basic abc123"))
}

func TestGetMessages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()

	GetMessages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp MessagesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Messages)
	for _, m := range resp.Messages {
		assert.NotEmpty(t, m.Author)
		assert.NotEmpty(t, m.Message)
	}
}

func TestGetSchedule(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()

	GetSchedule(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp ScheduleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.Len(t, resp.Games, 3)

	// Fixtures are strictly in the future and in date order.
	prev := time.Time{}
	for _, g := range resp.Games {
		assert.True(t, g.Date.After(time.Now().UTC().Add(-24*time.Hour)))
		assert.True(t, g.Date.After(prev))
		prev = g.Date
	}
}

func TestGetCardTemplates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/cards/templates", nil)
	rec := httptest.NewRecorder()

	GetCardTemplates(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp CardTemplatesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Templates)
}

func TestWidgetEndpointsRequireAuth(t *testing.T) {
	// Without a session, every widget handler answers 401 before touching
	// the store.
	endpoints := []struct {
		name    string
		handler http.HandlerFunc
		method  string
		body    string
	}{
		{"create letter", CreateLetter, http.MethodPost, `{"text":"oi"}`},
		{"list letters", GetLetters, http.MethodGet, ""},
		{"create card", CreateCard, http.MethodPost, `{"text":"oi","background":"#fff"}`},
		{"create mood", CreateMood, http.MethodPost, `{"label":"feliz"}`},
		{"set counter", SetDaysCounter, http.MethodPut, `{"start_date":"2026-01-01"}`},
		{"get counter", GetDaysCounter, http.MethodGet, ""},
		{"create drawing", CreateDrawing, http.MethodPost, `{"image_data":"data:image/png;base64,AA=="}`},
		{"create photo", CreatePhoto, http.MethodPost, `{"image_data":"data:image/png;base64,AA=="}`},
	}

	for _, ep := range endpoints {
		t.Run(ep.name, func(t *testing.T) {
			req := httptest.NewRequest(ep.method, "/", strings.NewReader(ep.body))
			rec := httptest.NewRecorder()

			ep.handler(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}
