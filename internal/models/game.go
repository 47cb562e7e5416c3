package models

import (
	"encoding/json"
	"time"
)

// Game types excluded from ingestion.
const (
	GameTypeAllStar    = "A"
	GameTypeExhibition = "E"
)

// Game represents one scheduled game for a league season. Home/away teams
// are referenced by their MLB ids; both must belong to the synced team
// roster for the game to be ingested at all.
type Game struct {
	ID            int64           `db:"id" json:"id"`
	MLBID         int64           `db:"mlb_id" json:"mlb_id" validate:"required,gt=0"`
	SportID       int             `db:"sport_id" json:"sport_id" validate:"required"`
	GameDate      *time.Time      `db:"game_date" json:"game_date" validate:"required"`
	GameType      string          `db:"game_type" json:"game_type" validate:"required"`
	Season        int             `db:"season" json:"season" validate:"required"`
	HomeTeamMLBID int64           `db:"home_team_mlb_id" json:"home_team_mlb_id" validate:"required"`
	AwayTeamMLBID int64           `db:"away_team_mlb_id" json:"away_team_mlb_id" validate:"required"`
	Details       json.RawMessage `db:"details" json:"details" validate:"required"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// IsIngestible reports whether the game type is part of regular ingestion.
// All-star and exhibition games are skipped.
func (g *Game) IsIngestible() bool {
	return g.GameType != GameTypeAllStar && g.GameType != GameTypeExhibition
}
