package routes

import (
	"github.com/go-chi/chi/v5"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/handlers"
)

func SetupRoutes(r *chi.Mux) {
	// Identity bootstrap
	r.Post("/api/auth/anonymous", handlers.AnonymousSignIn)
	r.Post("/api/auth/token", handlers.ExchangeToken)
	r.Get("/api/auth/me", handlers.GetMe)

	// Static content (no auth)
	r.Get("/api/messages", handlers.GetMessages)
	r.Get("/api/schedule", handlers.GetSchedule)
	r.Get("/api/cards/templates", handlers.GetCardTemplates)

	// Creative studio
	r.Post("/api/drawings", handlers.CreateDrawing)
	r.Get("/api/drawings", handlers.GetDrawings)
	r.Post("/api/letters", handlers.CreateLetter)
	r.Get("/api/letters", handlers.GetLetters)
	r.Post("/api/cards", handlers.CreateCard)
	r.Get("/api/cards", handlers.GetCards)

	// Mood tracker
	r.Post("/api/moods", handlers.CreateMood)
	r.Get("/api/moods", handlers.GetMoods)

	// Day counter (singleton)
	r.Put("/api/days-counter", handlers.SetDaysCounter)
	r.Get("/api/days-counter", handlers.GetDaysCounter)

	// Photo gallery
	r.Post("/api/photos", handlers.CreatePhoto)
	r.Post("/api/photos/upload", handlers.UploadPhoto)
	r.Get("/api/photos", handlers.GetPhotos)

	// Live store subscriptions
	r.Get("/ws/store", handlers.StoreSubscribe)
}
