package repository

import (
	"context"

	"github.com/yourusername/mlb-pbp/internal/models"
)

// PlayerRepository manages player records keyed by MLB id
type PlayerRepository interface {
	// ListIDMap returns the mlb_id -> internal id map for every player
	ListIDMap(ctx context.Context) (map[int64]int64, error)

	// Merge upserts one player; a non-nil internalID forces an in-place
	// update under that id
	Merge(ctx context.Context, internalID *int64, player models.Player) error
}

// TeamRepository manages team records keyed by MLB id
type TeamRepository interface {
	// ListIDMap returns the mlb_id -> internal id map for a league's teams
	ListIDMap(ctx context.Context, sportID int) (map[int64]int64, error)

	// ListMLBIDs returns the MLB ids of a league's teams, used as the
	// roster pre-filter for game ingestion
	ListMLBIDs(ctx context.Context, sportID int) ([]int64, error)

	// Merge upserts one team; a non-nil internalID forces an in-place
	// update under that id
	Merge(ctx context.Context, internalID *int64, team models.Team) error
}

// GameRepository manages game records
type GameRepository interface {
	// BulkInsert writes a batch of games; already-present MLB ids are
	// left untouched
	BulkInsert(ctx context.Context, games []models.Game) error

	// ListIDMap returns the mlb_id -> internal id map for a league season
	ListIDMap(ctx context.Context, sportID, season int) (map[int64]int64, error)

	// ListIDsWithoutPlays returns MLB ids of season games with no raw
	// plays yet (the unprocessed-work anti-join)
	ListIDsWithoutPlays(ctx context.Context, sportID, season int) ([]int64, error)
}

// PlayRepository manages the append-only raw play staging layer
type PlayRepository interface {
	// BulkInsert appends a batch of raw plays
	BulkInsert(ctx context.Context, plays []models.Play) error

	// ListBySeason returns all raw plays for a league season
	ListBySeason(ctx context.Context, sportID, season int) ([]models.Play, error)
}

// AtBatRepository manages derived at-bat records
type AtBatRepository interface {
	// BulkInsert writes a batch of at-bats
	BulkInsert(ctx context.Context, atBats []models.AtBat) error

	// ListBySeason returns all at-bats whose game belongs to a league season
	ListBySeason(ctx context.Context, sportID, season int) ([]models.AtBat, error)

	// UpdatePlayerRefs rewrites the pitcher/batter references of the given
	// at-bats (substitution fix pass)
	UpdatePlayerRefs(ctx context.Context, atBats []*models.AtBat) error
}

// PitchRepository manages derived pitch records
type PitchRepository interface {
	// BulkInsert writes a batch of pitches
	BulkInsert(ctx context.Context, pitches []models.Pitch) error

	// ListForPitcher returns a pitcher's pitches joined with scouting
	// context, optionally filtered
	ListForPitcher(ctx context.Context, pitcherID int64, filter PitchFilter) ([]models.PitchScoutingRow, error)

	// ListForBatter returns a batter's faced pitches joined with scouting
	// context, optionally filtered
	ListForBatter(ctx context.Context, batterID int64, filter PitchFilter) ([]models.PitchScoutingRow, error)
}

// PitchFilter narrows scouting queries. Nil fields are ignored.
type PitchFilter struct {
	SportID     *int
	Season      *int
	BallCount   *int
	StrikeCount *int
}
