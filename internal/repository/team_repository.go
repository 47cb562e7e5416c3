package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

// PostgresTeamRepository implements TeamRepository for PostgreSQL
type PostgresTeamRepository struct {
	db *database.DB
}

// NewPostgresTeamRepository creates a new team repository
func NewPostgresTeamRepository(db *database.DB) TeamRepository {
	return &PostgresTeamRepository{db: db}
}

// ListIDMap returns the mlb_id -> internal id map for a league's teams
func (r *PostgresTeamRepository) ListIDMap(ctx context.Context, sportID int) (map[int64]int64, error) {
	rows, err := r.db.GetPool().Query(ctx,
		"SELECT mlb_id, id FROM teams WHERE sport_id = $1", sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team id map: %w", err)
	}
	defer rows.Close()

	idMap := make(map[int64]int64)
	for rows.Next() {
		var mlbID, id int64
		if err := rows.Scan(&mlbID, &id); err != nil {
			return nil, fmt.Errorf("failed to scan team id row: %w", err)
		}
		idMap[mlbID] = id
	}

	return idMap, rows.Err()
}

// ListMLBIDs returns the MLB ids of a league's teams ordered by id
func (r *PostgresTeamRepository) ListMLBIDs(ctx context.Context, sportID int) ([]int64, error) {
	rows, err := r.db.GetPool().Query(ctx,
		"SELECT mlb_id FROM teams WHERE sport_id = $1 ORDER BY mlb_id", sportID)
	if err != nil {
		return nil, fmt.Errorf("failed to query team mlb ids: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan team mlb id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

// Merge upserts one team, preserving a known internal id
func (r *PostgresTeamRepository) Merge(ctx context.Context, internalID *int64, t models.Team) error {
	if internalID != nil {
		query := `
			UPDATE teams SET
				mlb_id = $2, sport_id = $3, name = $4, active = $5,
				hometown = $6, details = $7, updated_at = NOW()
			WHERE id = $1
		`
		commandTag, err := r.db.GetPool().Exec(ctx, query,
			*internalID, t.MLBID, t.SportID, t.Name, t.Active, t.Hometown, t.Details,
		)
		if err != nil {
			return fmt.Errorf("failed to update team: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	}

	query := `
		INSERT INTO teams (mlb_id, sport_id, name, active, hometown, details)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (mlb_id) DO UPDATE SET
			sport_id = EXCLUDED.sport_id,
			name = EXCLUDED.name,
			active = EXCLUDED.active,
			hometown = EXCLUDED.hometown,
			details = EXCLUDED.details,
			updated_at = NOW()
	`
	_, err := r.db.GetPool().Exec(ctx, query,
		t.MLBID, t.SportID, t.Name, t.Active, t.Hometown, t.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}

	return nil
}
