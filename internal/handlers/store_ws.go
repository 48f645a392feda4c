package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/models"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
)

var storeUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is handled at the HTTP layer already.
		return true
	},
}

// storeSnapshot is pushed on connect and after every remote change: the full
// ordered collection, so the client re-renders from scratch.
type storeSnapshot struct {
	Type     string      `json:"type"`
	Resource string      `json:"resource"`
	Records  interface{} `json:"records"`
	Set      *bool       `json:"set,omitempty"` // singleton resources only
}

// StoreSubscribe streams one resource of the authenticated user over
// WebSocket. The session token comes from the Authorization header or, for
// browser WebSocket clients, the `token` query parameter. The subscription
// lives until the socket closes; teardown always unregisters the listener.
func StoreSubscribe(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		token = r.URL.Query().Get("token")
		if token == "" {
			http.Error(w, "missing session token", http.StatusUnauthorized)
			return
		}
	}

	identityID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		http.Error(w, "invalid session token", http.StatusUnauthorized)
		return
	}

	resource := r.URL.Query().Get("resource")
	if !services.IsSubscribable(resource) {
		http.Error(w, "unknown resource", http.StatusBadRequest)
		return
	}

	conn, err := storeUpgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, unsubscribe := services.SubscribeStoreChanges(identityID.String(), resource)
	defer unsubscribe()

	// Initial snapshot, then one snapshot per change event.
	if err := pushSnapshot(ctx, conn, identityID.String(), resource); err != nil {
		return
	}

	go func() {
		for range events {
			if err := pushSnapshot(ctx, conn, identityID.String(), resource); err != nil {
				return
			}
		}
	}()

	// Reader loop: keep the connection alive and detect disconnects.
	conn.SetReadLimit(4 * 1024)
	_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(appData string) error {
		_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}

		var msg struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(data, &msg); err != nil {
			continue
		}
		if msg.Type == "ping" {
			_ = conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		}
	}
}

// pushSnapshot queries the current collection state and writes it to the
// socket. On a read failure the client gets an empty snapshot rather than a
// dropped connection.
func pushSnapshot(ctx context.Context, conn *websocket.Conn, identityID, resource string) error {
	queryCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snapshot := storeSnapshot{Type: "snapshot", Resource: resource}

	switch resource {
	case services.ResourceDrawings:
		records := []models.Drawing{}
		_ = services.ListRecords(queryCtx, identityID, resource, &records)
		snapshot.Records = records
	case services.ResourceLetters:
		records := []models.Letter{}
		_ = services.ListRecords(queryCtx, identityID, resource, &records)
		snapshot.Records = records
	case services.ResourceCards:
		records := []models.Card{}
		_ = services.ListRecords(queryCtx, identityID, resource, &records)
		snapshot.Records = records
	case services.ResourceMoods:
		records := []models.MoodEntry{}
		_ = services.ListRecords(queryCtx, identityID, resource, &records)
		snapshot.Records = records
	case services.ResourcePhotos:
		records := []models.Photo{}
		_ = services.ListRecords(queryCtx, identityID, resource, &records)
		snapshot.Records = records
	case services.ResourceDaysCounter:
		var counter models.DaysCounter
		found, _ := services.GetSingletonRecord(queryCtx, identityID, resource, &counter)
		snapshot.Set = &found
		if found {
			snapshot.Records = []models.DaysCounter{counter}
		} else {
			snapshot.Records = []models.DaysCounter{}
		}
	}

	return conn.WriteJSON(snapshot)
}
