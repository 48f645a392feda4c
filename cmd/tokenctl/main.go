// Command tokenctl provisions one-time access tokens. There is deliberately
// no HTTP endpoint for minting tokens; they are created out-of-band by
// whoever operates the site and handed to the recipient once.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/config"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/internal/database"
	"github.com/maeloisaaa/dr-emanuels-wonderland-app/pkg/utils"
)

func main() {
	note := flag.String("note", "", "free-form note stored with the token (who it is for)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	cfg := config.Load()

	if err := database.ConnectPostgres(cfg.PostgresURI); err != nil {
		log.Fatal("Failed to connect to PostgreSQL:", err)
	}
	defer database.DisconnectPostgres()

	secretBytes := make([]byte, 24)
	if _, err := rand.Read(secretBytes); err != nil {
		log.Fatal("Failed to generate secret:", err)
	}
	secret := base64.RawURLEncoding.EncodeToString(secretBytes)

	hash, err := utils.HashAccessToken(secret)
	if err != nil {
		log.Fatal("Failed to hash secret:", err)
	}

	var id string
	err = database.PostgresDB.QueryRow(`
		INSERT INTO access_tokens (token_hash, note) VALUES ($1, $2)
		RETURNING id
	`, hash, *note).Scan(&id)
	if err != nil {
		log.Fatal("Failed to store token:", err)
	}

	// The raw secret is shown exactly once; only the hash is stored.
	fmt.Printf("access token: %s.%s\n", id, secret)
}
