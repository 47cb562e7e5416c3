package repository

import (
	"context"
	"fmt"

	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

// PostgresPlayerRepository implements PlayerRepository for PostgreSQL
type PostgresPlayerRepository struct {
	db *database.DB
}

// NewPostgresPlayerRepository creates a new player repository
func NewPostgresPlayerRepository(db *database.DB) PlayerRepository {
	return &PostgresPlayerRepository{db: db}
}

// ListIDMap returns the mlb_id -> internal id map for every player
func (r *PostgresPlayerRepository) ListIDMap(ctx context.Context) (map[int64]int64, error) {
	rows, err := r.db.GetPool().Query(ctx, "SELECT mlb_id, id FROM players")
	if err != nil {
		return nil, fmt.Errorf("failed to query player id map: %w", err)
	}
	defer rows.Close()

	idMap := make(map[int64]int64)
	for rows.Next() {
		var mlbID, id int64
		if err := rows.Scan(&mlbID, &id); err != nil {
			return nil, fmt.Errorf("failed to scan player id row: %w", err)
		}
		idMap[mlbID] = id
	}

	return idMap, rows.Err()
}

// Merge upserts one player. With a known internal id the row is updated in
// place (the id itself is never touched); otherwise the insert lets the
// store assign one, falling back to an update should the mlb_id already be
// present.
func (r *PostgresPlayerRepository) Merge(ctx context.Context, internalID *int64, p models.Player) error {
	if internalID != nil {
		query := `
			UPDATE players SET
				mlb_id = $2, full_name = $3, is_player = $4, throws = $5, bats = $6,
				birth_date = $7, birth_city = $8, birth_country = $9,
				primary_position_code = $10, primary_position = $11, active = $12,
				mlb_debut_date = $13, last_played_date = $14, details = $15,
				updated_at = NOW()
			WHERE id = $1
		`
		commandTag, err := r.db.GetPool().Exec(ctx, query,
			*internalID, p.MLBID, p.FullName, p.IsPlayer, p.Throws, p.Bats,
			p.BirthDate, p.BirthCity, p.BirthCountry,
			p.PrimaryPositionCode, p.PrimaryPosition, p.Active,
			p.MLBDebutDate, p.LastPlayedDate, p.Details,
		)
		if err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
		if commandTag.RowsAffected() == 0 {
			return models.ErrNotFound
		}
		return nil
	}

	query := `
		INSERT INTO players (
			mlb_id, full_name, is_player, throws, bats, birth_date, birth_city,
			birth_country, primary_position_code, primary_position, active,
			mlb_debut_date, last_played_date, details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		ON CONFLICT (mlb_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			is_player = EXCLUDED.is_player,
			throws = EXCLUDED.throws,
			bats = EXCLUDED.bats,
			birth_date = EXCLUDED.birth_date,
			birth_city = EXCLUDED.birth_city,
			birth_country = EXCLUDED.birth_country,
			primary_position_code = EXCLUDED.primary_position_code,
			primary_position = EXCLUDED.primary_position,
			active = EXCLUDED.active,
			mlb_debut_date = EXCLUDED.mlb_debut_date,
			last_played_date = EXCLUDED.last_played_date,
			details = EXCLUDED.details,
			updated_at = NOW()
	`
	_, err := r.db.GetPool().Exec(ctx, query,
		p.MLBID, p.FullName, p.IsPlayer, p.Throws, p.Bats, p.BirthDate, p.BirthCity,
		p.BirthCountry, p.PrimaryPositionCode, p.PrimaryPosition, p.Active,
		p.MLBDebutDate, p.LastPlayedDate, p.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}

	return nil
}
