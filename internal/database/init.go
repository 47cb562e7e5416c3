package database

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/yourusername/mlb-pbp/internal/config"
)

//go:embed schema.sql
var schemaDDL string

// Initialize creates a database connection pool and verifies the schema has
// been applied.
func Initialize(ctx context.Context, cfg *config.Config) (*DB, error) {
	db, err := NewDB(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}

	var count int
	err = db.pool.QueryRow(ctx,
		"SELECT COUNT(*) FROM information_schema.tables WHERE table_schema = 'public' AND table_name = 'players'",
	).Scan(&count)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to inspect schema: %w", err)
	}

	if count == 0 {
		db.Close()
		return nil, fmt.Errorf("schema not applied; run `pbp-sync initdb` first")
	}

	return db, nil
}

// ApplySchema applies the embedded DDL. The statements are idempotent so
// re-running is safe.
func ApplySchema(ctx context.Context, db *DB) error {
	if _, err := db.pool.Exec(ctx, schemaDDL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
