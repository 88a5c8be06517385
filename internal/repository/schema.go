package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS winners (
        id BIGSERIAL PRIMARY KEY,
        name TEXT NOT NULL,
        roll_number TEXT,
        event TEXT NOT NULL,
        date DATE,
        photo_url TEXT,
        year TEXT NOT NULL,
        is_week_winner BOOLEAN NOT NULL DEFAULT FALSE,
        position INTEGER CHECK (position BETWEEN 1 AND 3),
        activity_type TEXT,
        week_number INTEGER CHECK (week_number > 0),
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS activities (
        id BIGSERIAL PRIMARY KEY,
        title TEXT NOT NULL,
        activity_date DATE,
        description TEXT,
        status TEXT NOT NULL CHECK (status IN ('upcoming', 'completed')),
        poster_url TEXT,
        photos TEXT[],
        details TEXT,
        form_link TEXT,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS gallery (
        id BIGSERIAL PRIMARY KEY,
        image_url TEXT NOT NULL,
        title TEXT,
        uploaded_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE TABLE IF NOT EXISTS participants (
        id BIGSERIAL PRIMARY KEY,
        activity_id BIGINT,
        name TEXT NOT NULL,
        roll_number TEXT NOT NULL,
        department TEXT NOT NULL,
        college TEXT NOT NULL,
        award TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
	`CREATE INDEX IF NOT EXISTS participants_roll_number_idx ON participants (roll_number)`,
	`CREATE TABLE IF NOT EXISTS students (
        id BIGSERIAL PRIMARY KEY,
        pin TEXT NOT NULL UNIQUE,
        name TEXT NOT NULL,
        branch TEXT NOT NULL,
        year TEXT NOT NULL,
        section TEXT NOT NULL,
        created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
    )`,
}

// EnsureSchema creates the showcase tables when they do not exist yet.
// participants.activity_id carries no foreign key; deleting an
// activity leaves its participants in place.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return persistenceError("schema", "migrate", fmt.Errorf("ensure schema: %w", err))
		}
	}
	return nil
}
