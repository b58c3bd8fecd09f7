package storage

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// InitSchema creates the users and dreams tables if they do not exist and
// migrates pre-existing databases that predate per-user scoping by adding the
// user_email column. Safe to call more than once; main calls it exactly once
// before the server starts.
func InitSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			email TEXT UNIQUE NOT NULL,
			name TEXT NOT NULL,
			password_hash BYTEA NOT NULL,
			salt BYTEA NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS dreams (
			id BIGSERIAL PRIMARY KEY,
			created_at TEXT NOT NULL,
			text TEXT NOT NULL,
			tags TEXT,
			sleep_hours DOUBLE PRECISION,
			sleep_quality INTEGER,
			motifs TEXT,
			archetype TEXT,
			reframed TEXT,
			emotions TEXT,
			embedding BYTEA
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}

	// Databases created before per-user scoping lack the user_email column.
	hasColumn, err := columnExists(ctx, pool, "dreams", "user_email")
	if err != nil {
		return err
	}
	if !hasColumn {
		if _, err := pool.Exec(ctx, `ALTER TABLE dreams ADD COLUMN user_email TEXT`); err != nil {
			return fmt.Errorf("adding user_email column: %w", err)
		}
	}

	if _, err := pool.Exec(ctx, `CREATE INDEX IF NOT EXISTS idx_dreams_user_email ON dreams(user_email)`); err != nil {
		return fmt.Errorf("creating user index: %w", err)
	}

	return nil
}

func columnExists(ctx context.Context, pool *pgxpool.Pool, table, column string) (bool, error) {
	var exists bool
	err := pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM information_schema.columns
			WHERE table_name = $1 AND column_name = $2
		)`, table, column).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("probing column %s.%s: %w", table, column, err)
	}
	return exists, nil
}
