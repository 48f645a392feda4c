package main

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/config"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/handlers"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/middleware"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/routes"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/services"
)

func main() {
	// Load env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Resolve configuration: host-injected file, then env, then defaults
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Println("Configuration is incomplete:", err)
		log.Println("Set MONGODB_URI and APP_NAMESPACE via the environment or a CONFIG_FILE JSON file.")
		log.Fatal("Refusing to start without a persistence backend")
	}

	services.InitStore(cfg.Namespace)

	// Connect to PostgreSQL (identity registry)
	log.Printf("Connecting to PostgreSQL...")
	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	// Connect to Redis (sessions, rate limiting, store change pub/sub)
	log.Printf("Connecting to Redis...")
	if err := database.ConnectRedis(cfg.RedisURI); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	defer database.DisconnectRedis()

	// Connect to MongoDB (document store)
	log.Printf("Connecting to MongoDB...")
	if err := database.Connect(cfg.MongoURI); err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer database.Disconnect()

	if err := services.EnsureStoreIndexes(context.Background()); err != nil {
		log.Printf("⚠️  WARNING: failed to ensure store indexes: %v", err)
	} else {
		log.Println("✅ Store indexes ensured")
	}

	// Optional Cloudinary mirror for gallery uploads
	if cfg.HasCloudinary() {
		if err := handlers.InitMediaService(cfg); err != nil {
			log.Printf("Warning: failed to initialize Cloudinary: %v", err)
			log.Println("Photo uploads will fall back to data-URI storage only")
		} else {
			log.Println("✅ Cloudinary mirror initialized")
		}
	} else {
		log.Println("Cloudinary credentials not set; photos are stored as data URIs only")
	}

	// Start the shared Redis listener feeding store subscriptions
	services.StartStoreSubscriber(context.Background())

	// Setup router
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.IsProduction() {
		for _, mw := range middleware.ProductionSecurity() {
			r.Use(mw)
		}
		log.Println("✅ Production security enabled (security headers, per-IP + auth rate limiting)")
	}
	r.Use(middleware.RateLimitMiddleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	routes.SetupRoutes(r)

	log.Printf("🚀 Wonderland backend running on :%s (namespace %q)", cfg.Port, cfg.Namespace)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
