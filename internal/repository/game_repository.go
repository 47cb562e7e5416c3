package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

// PostgresGameRepository implements GameRepository for PostgreSQL
type PostgresGameRepository struct {
	db *database.DB
}

// NewPostgresGameRepository creates a new game repository
func NewPostgresGameRepository(db *database.DB) GameRepository {
	return &PostgresGameRepository{db: db}
}

const insertGameSQL = `
	INSERT INTO games (
		mlb_id, sport_id, game_date, game_type, season,
		home_team_mlb_id, away_team_mlb_id, details
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	ON CONFLICT (mlb_id) DO NOTHING
`

// BulkInsert writes a batch of games in a single batch round trip. Games
// whose MLB id is already present are skipped, keeping repeated backfills
// idempotent.
func (r *PostgresGameRepository) BulkInsert(ctx context.Context, games []models.Game) error {
	if len(games) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, g := range games {
		batch.Queue(insertGameSQL,
			g.MLBID, g.SportID, g.GameDate, g.GameType, g.Season,
			g.HomeTeamMLBID, g.AwayTeamMLBID, g.Details,
		)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range games {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert game batch: %w", err)
		}
	}

	return nil
}

// ListIDMap returns the mlb_id -> internal id map for a league season
func (r *PostgresGameRepository) ListIDMap(ctx context.Context, sportID, season int) (map[int64]int64, error) {
	rows, err := r.db.GetPool().Query(ctx,
		"SELECT mlb_id, id FROM games WHERE sport_id = $1 AND season = $2",
		sportID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query game id map: %w", err)
	}
	defer rows.Close()

	idMap := make(map[int64]int64)
	for rows.Next() {
		var mlbID, id int64
		if err := rows.Scan(&mlbID, &id); err != nil {
			return nil, fmt.Errorf("failed to scan game id row: %w", err)
		}
		idMap[mlbID] = id
	}

	return idMap, rows.Err()
}

// ListIDsWithoutPlays returns MLB ids of season games that have no raw
// plays yet. Games with existing plays are never re-fetched.
func (r *PostgresGameRepository) ListIDsWithoutPlays(ctx context.Context, sportID, season int) ([]int64, error) {
	query := `
		SELECT g.mlb_id
		FROM games g
		WHERE g.sport_id = $1 AND g.season = $2
		  AND NOT EXISTS (
			SELECT 1 FROM at_bat_details d
			WHERE d.game_mlb_id = g.mlb_id AND d.sport_id = g.sport_id AND d.season = g.season
		  )
		ORDER BY g.mlb_id
	`

	rows, err := r.db.GetPool().Query(ctx, query, sportID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query games without plays: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan game mlb id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
