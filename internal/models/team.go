package models

import (
	"encoding/json"
	"time"
)

// Team represents a team within a league (sport). Keyed by MLBID across
// syncs, like Player.
type Team struct {
	ID        int64           `db:"id" json:"id"`
	MLBID     int64           `db:"mlb_id" json:"mlb_id" validate:"required,gt=0"`
	SportID   int             `db:"sport_id" json:"sport_id" validate:"required"`
	Name      string          `db:"name" json:"name" validate:"required"`
	Active    bool            `db:"active" json:"active"`
	Hometown  *string         `db:"hometown" json:"hometown" validate:"required"`
	Details   json.RawMessage `db:"details" json:"details" validate:"required"`
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}
