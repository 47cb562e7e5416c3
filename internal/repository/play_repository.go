package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

const errScanPlay = "failed to scan play: %w"

// PostgresPlayRepository implements PlayRepository for PostgreSQL
type PostgresPlayRepository struct {
	db *database.DB
}

// NewPostgresPlayRepository creates a new raw play repository
func NewPostgresPlayRepository(db *database.DB) PlayRepository {
	return &PostgresPlayRepository{db: db}
}

const insertPlaySQL = `
	INSERT INTO at_bat_details (game_mlb_id, sport_id, season, details)
	VALUES ($1, $2, $3, $4)
`

// BulkInsert appends a batch of raw plays. The staging layer is append-only
// so this is a plain insert with no conflict handling.
func (r *PostgresPlayRepository) BulkInsert(ctx context.Context, plays []models.Play) error {
	if len(plays) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range plays {
		batch.Queue(insertPlaySQL, p.GameMLBID, p.SportID, p.Season, p.Details)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range plays {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert play batch: %w", err)
		}
	}

	return nil
}

// ListBySeason returns all raw plays for a league season
func (r *PostgresPlayRepository) ListBySeason(ctx context.Context, sportID, season int) ([]models.Play, error) {
	query := `
		SELECT id, game_mlb_id, sport_id, season, details, created_at
		FROM at_bat_details
		WHERE sport_id = $1 AND season = $2
		ORDER BY id
	`

	rows, err := r.db.GetPool().Query(ctx, query, sportID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query plays by season: %w", err)
	}
	defer rows.Close()

	var plays []models.Play
	for rows.Next() {
		var p models.Play
		err := rows.Scan(&p.ID, &p.GameMLBID, &p.SportID, &p.Season, &p.Details, &p.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf(errScanPlay, err)
		}
		plays = append(plays, p)
	}

	return plays, rows.Err()
}
