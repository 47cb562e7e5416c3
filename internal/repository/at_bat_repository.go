package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

const errScanAtBat = "failed to scan at-bat: %w"

// PostgresAtBatRepository implements AtBatRepository for PostgreSQL
type PostgresAtBatRepository struct {
	db *database.DB
}

// NewPostgresAtBatRepository creates a new at-bat repository
func NewPostgresAtBatRepository(db *database.DB) AtBatRepository {
	return &PostgresAtBatRepository{db: db}
}

const insertAtBatSQL = `
	INSERT INTO at_bats (
		sport_id, at_bat_index, has_out, outs, balls, strikes,
		total_pitch_count, inning, is_top_inning, result, rbi, event_type,
		is_scoring_play, r1b, r2b, r3b, details,
		game_id, game_mlb_id, pitcher_id, pitcher_mlb_id, batter_id, batter_mlb_id
	) VALUES (
		$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12,
		$13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23
	)
`

// BulkInsert writes a batch of at-bats in a single batch round trip
func (r *PostgresAtBatRepository) BulkInsert(ctx context.Context, atBats []models.AtBat) error {
	if len(atBats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ab := range atBats {
		batch.Queue(insertAtBatSQL,
			ab.SportID, ab.AtBatIndex, ab.HasOut, ab.Outs, ab.Balls, ab.Strikes,
			ab.TotalPitchCount, ab.Inning, ab.IsTopInning, ab.Result, ab.RBI, ab.EventType,
			ab.IsScoringPlay, ab.R1B, ab.R2B, ab.R3B, ab.Details,
			ab.GameID, ab.GameMLBID, ab.PitcherID, ab.PitcherMLBID, ab.BatterID, ab.BatterMLBID,
		)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range atBats {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert at-bat batch: %w", err)
		}
	}

	return nil
}

// ListBySeason returns all at-bats whose game belongs to a league season
func (r *PostgresAtBatRepository) ListBySeason(ctx context.Context, sportID, season int) ([]models.AtBat, error) {
	query := `
		SELECT ab.id, ab.sport_id, ab.at_bat_index, ab.has_out, ab.outs, ab.balls,
		       ab.strikes, ab.total_pitch_count, ab.inning, ab.is_top_inning,
		       ab.result, ab.rbi, ab.event_type, ab.is_scoring_play,
		       ab.r1b, ab.r2b, ab.r3b, ab.details,
		       ab.game_id, ab.game_mlb_id, ab.pitcher_id, ab.pitcher_mlb_id,
		       ab.batter_id, ab.batter_mlb_id, ab.created_at, ab.updated_at
		FROM at_bats ab
		JOIN games g ON ab.game_id = g.id
		WHERE ab.sport_id = $1 AND g.season = $2
		ORDER BY ab.id
	`

	rows, err := r.db.GetPool().Query(ctx, query, sportID, season)
	if err != nil {
		return nil, fmt.Errorf("failed to query at-bats by season: %w", err)
	}
	defer rows.Close()

	var atBats []models.AtBat
	for rows.Next() {
		var ab models.AtBat
		err := rows.Scan(
			&ab.ID, &ab.SportID, &ab.AtBatIndex, &ab.HasOut, &ab.Outs, &ab.Balls,
			&ab.Strikes, &ab.TotalPitchCount, &ab.Inning, &ab.IsTopInning,
			&ab.Result, &ab.RBI, &ab.EventType, &ab.IsScoringPlay,
			&ab.R1B, &ab.R2B, &ab.R3B, &ab.Details,
			&ab.GameID, &ab.GameMLBID, &ab.PitcherID, &ab.PitcherMLBID,
			&ab.BatterID, &ab.BatterMLBID, &ab.CreatedAt, &ab.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanAtBat, err)
		}
		atBats = append(atBats, ab)
	}

	return atBats, rows.Err()
}

const updatePlayerRefsSQL = `
	UPDATE at_bats SET
		pitcher_id = $2, pitcher_mlb_id = $3, batter_id = $4, batter_mlb_id = $5,
		updated_at = NOW()
	WHERE id = $1
`

// UpdatePlayerRefs rewrites the pitcher/batter references of the given
// at-bats inside a single transaction
func (r *PostgresAtBatRepository) UpdatePlayerRefs(ctx context.Context, atBats []*models.AtBat) error {
	if len(atBats) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, ab := range atBats {
		batch.Queue(updatePlayerRefsSQL,
			ab.ID, ab.PitcherID, ab.PitcherMLBID, ab.BatterID, ab.BatterMLBID,
		)
	}

	return r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for range atBats {
			if _, err := results.Exec(); err != nil {
				results.Close()
				return fmt.Errorf("failed to update at-bat players: %w", err)
			}
		}
		return results.Close()
	})
}
