package models

import (
	"encoding/json"
	"time"
)

// AtBat is one reconstructed plate appearance, derived from a stored raw
// play. Outs/balls/strikes are the terminal count read from the last pitch
// event; R1B/R2B/R3B reflect runner-movement origins during the play.
// PitcherID/BatterID stay nil when the MLB id could not be resolved against
// the player table; the MLB ids are always kept.
type AtBat struct {
	ID              int64           `db:"id" json:"id"`
	SportID         int             `db:"sport_id" json:"sport_id" validate:"required"`
	AtBatIndex      int             `db:"at_bat_index" json:"at_bat_index" validate:"gte=0"`
	HasOut          bool            `db:"has_out" json:"has_out"`
	Outs            int             `db:"outs" json:"outs" validate:"gte=0,lte=3"`
	Balls           int             `db:"balls" json:"balls" validate:"gte=0,lte=4"`
	Strikes         int             `db:"strikes" json:"strikes" validate:"gte=0,lte=3"`
	TotalPitchCount int             `db:"total_pitch_count" json:"total_pitch_count" validate:"gt=0"`
	Inning          int             `db:"inning" json:"inning" validate:"gt=0"`
	IsTopInning     bool            `db:"is_top_inning" json:"is_top_inning"`
	Result          json.RawMessage `db:"result" json:"result" validate:"required"`
	RBI             int             `db:"rbi" json:"rbi" validate:"gte=0"`
	EventType       *string         `db:"event_type" json:"event_type"`
	IsScoringPlay   bool            `db:"is_scoring_play" json:"is_scoring_play"`
	R1B             bool            `db:"r1b" json:"r1b"`
	R2B             bool            `db:"r2b" json:"r2b"`
	R3B             bool            `db:"r3b" json:"r3b"`
	Details         json.RawMessage `db:"details" json:"details" validate:"required"`
	GameID          *int64          `db:"game_id" json:"game_id"`
	GameMLBID       int64           `db:"game_mlb_id" json:"game_mlb_id" validate:"required,gt=0"`
	PitcherID       *int64          `db:"pitcher_id" json:"pitcher_id"`
	PitcherMLBID    int64           `db:"pitcher_mlb_id" json:"pitcher_mlb_id" validate:"required,gt=0"`
	BatterID        *int64          `db:"batter_id" json:"batter_id"`
	BatterMLBID     int64           `db:"batter_mlb_id" json:"batter_mlb_id" validate:"required,gt=0"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}
