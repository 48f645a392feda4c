package database

import (
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"
)

var PostgresDB *sql.DB

// ConnectPostgres connects to the PostgreSQL identity registry.
func ConnectPostgres(postgresURI string) error {
	var err error

	PostgresDB, err = sql.Open("postgres", postgresURI)
	if err != nil {
		return err
	}

	PostgresDB.SetMaxOpenConns(25)
	PostgresDB.SetMaxIdleConns(5)
	PostgresDB.SetConnMaxLifetime(5 * time.Minute)

	if err = PostgresDB.Ping(); err != nil {
		return err
	}

	log.Println("✅ Connected to PostgreSQL")

	return InitPostgresTables()
}

// InitPostgresTables creates the identity tables if they don't exist.
func InitPostgresTables() error {
	queries := []string{
		// Identities: anonymous or token-derived user handles. Rows are never
		// deleted by the app; every persisted document is namespaced by one.
		`CREATE TABLE IF NOT EXISTS identities (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			kind VARCHAR(16) NOT NULL DEFAULT 'anonymous',
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_seen_at TIMESTAMP NOT NULL DEFAULT NOW()
		)`,

		// One-time access tokens, provisioned directly in the database
		// (there is no self-service endpoint to mint them). Only the argon2
		// hash of the secret is stored.
		`CREATE TABLE IF NOT EXISTS access_tokens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			token_hash VARCHAR(255) NOT NULL,
			note TEXT,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			used_at TIMESTAMP,
			identity_id UUID REFERENCES identities(id)
		)`,
	}

	for _, q := range queries {
		if _, err := PostgresDB.Exec(q); err != nil {
			return err
		}
	}

	log.Println("✅ PostgreSQL identity tables ready")
	return nil
}

// DisconnectPostgres closes the PostgreSQL connection.
func DisconnectPostgres() error {
	if PostgresDB != nil {
		return PostgresDB.Close()
	}
	return nil
}
