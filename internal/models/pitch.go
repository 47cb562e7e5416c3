package models

import (
	"encoding/json"
	"time"
)

// Pitch is one pitch event inside an at-bat. BallCount/StrikeCount hold the
// count at the start of the pitch, not after it. PitchIndex is the event's
// position in the full play event list, so indices within an at-bat are not
// contiguous when non-pitch events are interleaved.
type Pitch struct {
	ID                   int64           `db:"id" json:"id"`
	PitchIndex           int             `db:"pitch_index" json:"pitch_index" validate:"gte=0"`
	BallCount            int             `db:"ball_count" json:"ball_count" validate:"gte=0,lte=4"`
	StrikeCount          int             `db:"strike_count" json:"strike_count" validate:"gte=0,lte=3"`
	PitchTypeCode        *string         `db:"pitch_type_code" json:"pitch_type_code"`
	PitchTypeDescription *string         `db:"pitch_type_description" json:"pitch_type_description"`
	CallCode             string          `db:"call_code" json:"call_code" validate:"required"`
	CallDescription      string          `db:"call_description" json:"call_description" validate:"required"`
	Zone                 *int            `db:"zone" json:"zone"`
	StartSpeed           *float64        `db:"start_speed" json:"start_speed"`
	IsBall               bool            `db:"is_ball" json:"is_ball"`
	IsStrike             bool            `db:"is_strike" json:"is_strike"`
	IsFoul               bool            `db:"is_foul" json:"is_foul"`
	IsOut                bool            `db:"is_out" json:"is_out"`
	IsInPlay             bool            `db:"is_in_play" json:"is_in_play"`
	Details              json.RawMessage `db:"details" json:"details" validate:"required"`
	AtBatID              int64           `db:"at_bat_id" json:"at_bat_id" validate:"required,gt=0"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
}
