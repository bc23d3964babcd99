package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas si no existen. La PRIMARY KEY compuesta de
// event_inscriptions es la que hace cumplir la unicidad del par
// (usuario, evento) a nivel de store.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(36) PRIMARY KEY,
			email VARCHAR(255) NOT NULL UNIQUE,
			name VARCHAR(255) NOT NULL,
			password_hash VARCHAR(255) NOT NULL,
			role VARCHAR(20) NOT NULL DEFAULT 'USER',
			bio TEXT NOT NULL DEFAULT '',
			avatar_id VARCHAR(50) NOT NULL DEFAULT '',
			discord_id VARCHAR(255) NOT NULL DEFAULT '',
			member_start DATE,
			member_stop DATE,
			account_creation TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS members_code (
			validation_token VARCHAR(255) PRIMARY KEY,
			periods INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id VARCHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			author VARCHAR(36) NOT NULL,
			category VARCHAR(100) NOT NULL DEFAULT '',
			description TEXT NOT NULL DEFAULT '',
			date TIMESTAMPTZ,
			image BYTEA,
			inscription BOOLEAN NOT NULL DEFAULT FALSE,
			inscription_group VARCHAR(20) NOT NULL DEFAULT 'USER',
			inscription_limit INT,
			inscription_start TIMESTAMPTZ,
			inscription_stop TIMESTAMPTZ
		)`,
		`CREATE TABLE IF NOT EXISTS event_inscriptions (
			user_id VARCHAR(36) NOT NULL REFERENCES users(id),
			event_id VARCHAR(36) NOT NULL REFERENCES events(id) ON DELETE CASCADE,
			inscribed_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, event_id)
		)`,
		`CREATE TABLE IF NOT EXISTS books (
			id VARCHAR(36) PRIMARY KEY,
			title VARCHAR(255) NOT NULL,
			caution NUMERIC(10,2) NOT NULL DEFAULT 0,
			status VARCHAR(50) NOT NULL DEFAULT 'available',
			item_order INT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS committee_info (
			id VARCHAR(36) PRIMARY KEY,
			category VARCHAR(100) NOT NULL,
			title VARCHAR(255) NOT NULL,
			name VARCHAR(255) NOT NULL,
			image_id VARCHAR(50) NOT NULL DEFAULT '',
			item_order INT NOT NULL
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
