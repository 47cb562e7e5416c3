package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yourusername/mlb-pbp/internal/database"
	"github.com/yourusername/mlb-pbp/internal/models"
)

const errScanPitch = "failed to scan pitch: %w"

// PostgresPitchRepository implements PitchRepository for PostgreSQL
type PostgresPitchRepository struct {
	db *database.DB
}

// NewPostgresPitchRepository creates a new pitch repository
func NewPostgresPitchRepository(db *database.DB) PitchRepository {
	return &PostgresPitchRepository{db: db}
}

const insertPitchSQL = `
	INSERT INTO pitches (
		pitch_index, ball_count, strike_count, pitch_type_code,
		pitch_type_description, call_code, call_description, zone, start_speed,
		is_ball, is_strike, is_foul, is_out, is_in_play, details, at_bat_id
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
`

// BulkInsert writes a batch of pitches in a single batch round trip
func (r *PostgresPitchRepository) BulkInsert(ctx context.Context, pitches []models.Pitch) error {
	if len(pitches) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, p := range pitches {
		batch.Queue(insertPitchSQL,
			p.PitchIndex, p.BallCount, p.StrikeCount, p.PitchTypeCode,
			p.PitchTypeDescription, p.CallCode, p.CallDescription, p.Zone, p.StartSpeed,
			p.IsBall, p.IsStrike, p.IsFoul, p.IsOut, p.IsInPlay, p.Details, p.AtBatID,
		)
	}

	results := r.db.GetPool().SendBatch(ctx, batch)
	defer results.Close()

	for range pitches {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to insert pitch batch: %w", err)
		}
	}

	return nil
}

// scoutingSelectSQL joins pitches with their at-bat, game and both players.
// Switch-hitter resolution and zone math happen in the report layer; this
// just surfaces the raw columns.
const scoutingSelectSQL = `
	SELECT p.id, p.pitch_index, p.ball_count, p.strike_count,
	       p.pitch_type_code, p.pitch_type_description, p.call_code,
	       p.call_description, p.zone, p.start_speed,
	       p.is_ball, p.is_strike, p.is_foul, p.is_out, p.is_in_play,
	       p.details, p.at_bat_id, p.created_at,
	       g.sport_id, g.season,
	       batter.details->'batSide'->>'code' AS batter_hand,
	       pitcher.details->'pitchHand'->>'code' AS pitcher_hand,
	       (batter.details->>'strikeZoneTop')::float8 AS batter_sz_top,
	       (batter.details->>'strikeZoneBottom')::float8 AS batter_sz_bottom
	FROM pitches p
	JOIN at_bats ab ON p.at_bat_id = ab.id
	JOIN games g ON ab.game_id = g.id
	JOIN players batter ON ab.batter_id = batter.id
	JOIN players pitcher ON ab.pitcher_id = pitcher.id
`

// ListForPitcher returns a pitcher's pitches joined with scouting context
func (r *PostgresPitchRepository) ListForPitcher(ctx context.Context, pitcherID int64, filter PitchFilter) ([]models.PitchScoutingRow, error) {
	return r.listScoutingRows(ctx, "ab.pitcher_id", pitcherID, filter)
}

// ListForBatter returns a batter's faced pitches joined with scouting context
func (r *PostgresPitchRepository) ListForBatter(ctx context.Context, batterID int64, filter PitchFilter) ([]models.PitchScoutingRow, error) {
	return r.listScoutingRows(ctx, "ab.batter_id", batterID, filter)
}

func (r *PostgresPitchRepository) listScoutingRows(ctx context.Context, playerColumn string, playerID int64, filter PitchFilter) ([]models.PitchScoutingRow, error) {
	query := scoutingSelectSQL + fmt.Sprintf(" WHERE %s = $1", playerColumn)
	args := []any{playerID}

	if filter.SportID != nil {
		args = append(args, *filter.SportID)
		query += fmt.Sprintf(" AND g.sport_id = $%d", len(args))
	}
	if filter.Season != nil {
		args = append(args, *filter.Season)
		query += fmt.Sprintf(" AND g.season = $%d", len(args))
	}
	if filter.BallCount != nil {
		args = append(args, *filter.BallCount)
		query += fmt.Sprintf(" AND p.ball_count = $%d", len(args))
	}
	if filter.StrikeCount != nil {
		args = append(args, *filter.StrikeCount)
		query += fmt.Sprintf(" AND p.strike_count = $%d", len(args))
	}
	query += " ORDER BY p.id"

	rows, err := r.db.GetPool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query scouting pitches: %w", err)
	}
	defer rows.Close()

	var out []models.PitchScoutingRow
	for rows.Next() {
		var row models.PitchScoutingRow
		err := rows.Scan(
			&row.ID, &row.PitchIndex, &row.BallCount, &row.StrikeCount,
			&row.PitchTypeCode, &row.PitchTypeDescription, &row.CallCode,
			&row.CallDescription, &row.Zone, &row.StartSpeed,
			&row.IsBall, &row.IsStrike, &row.IsFoul, &row.IsOut, &row.IsInPlay,
			&row.Details, &row.AtBatID, &row.CreatedAt,
			&row.SportID, &row.Season,
			&row.BatterHand, &row.PitcherHand,
			&row.BatterSZTop, &row.BatterSZBottom,
		)
		if err != nil {
			return nil, fmt.Errorf(errScanPitch, err)
		}
		out = append(out, row)
	}

	return out, rows.Err()
}
