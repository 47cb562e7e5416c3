package models

import (
	"encoding/json"
	"time"
)

// Play is one raw play fetched from the play-by-play endpoint, scoped to a
// game, league and season. Rows are append-only: a game whose plays already
// exist is never re-fetched, and stored payloads are the source of truth for
// the at-bat and pitch derivation stages.
type Play struct {
	ID        int64           `db:"id" json:"id"`
	GameMLBID int64           `db:"game_mlb_id" json:"game_mlb_id" validate:"required,gt=0"`
	SportID   int             `db:"sport_id" json:"sport_id" validate:"required"`
	Season    int             `db:"season" json:"season" validate:"required"`
	Details   json.RawMessage `db:"details" json:"details" validate:"required"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
}
