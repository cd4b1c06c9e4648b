package database

import (
	"context"
	"fmt"
)

// schemaStatements bootstraps the three tables the application owns.
// Artworks is a text array of image URLs; order is display order and the
// first element doubles as the cover image.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		email      TEXT NOT NULL UNIQUE,
		name       TEXT NOT NULL DEFAULT '',
		password   TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id         UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		name       TEXT NOT NULL,
		slug       TEXT NOT NULL UNIQUE,
		biography  TEXT NOT NULL DEFAULT '',
		artworks   TEXT[] NOT NULL DEFAULT '{}',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS collections (
		id          UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		title       TEXT NOT NULL,
		artist_name TEXT NOT NULL,
		image_url   TEXT NOT NULL,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_artists_name ON artists (name)`,
	`CREATE INDEX IF NOT EXISTS idx_collections_artist_name ON collections (artist_name)`,
	`CREATE INDEX IF NOT EXISTS idx_collections_created_at ON collections (created_at)`,
}

// EnsureSchema creates the tables on startup when they do not exist yet.
func (db *PostgresDB) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema bootstrap failed: %w", err)
		}
	}
	return nil
}
