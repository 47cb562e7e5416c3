package models

import (
	"encoding/json"
	"time"
)

// Player represents a player synced from the MLB Stats API. MLBID is the
// durable identity across syncs; ID is assigned by the store on first insert
// and never changes afterwards.
type Player struct {
	ID                  int64           `db:"id" json:"id"`
	MLBID               int64           `db:"mlb_id" json:"mlb_id" validate:"required,gt=0"`
	FullName            string          `db:"full_name" json:"full_name" validate:"required"`
	IsPlayer            *bool           `db:"is_player" json:"is_player" validate:"required"`
	Throws              *string         `db:"throws" json:"throws"`
	Bats                *string         `db:"bats" json:"bats"`
	BirthDate           *time.Time      `db:"birth_date" json:"birth_date" validate:"required"`
	BirthCity           *string         `db:"birth_city" json:"birth_city"`
	BirthCountry        *string         `db:"birth_country" json:"birth_country"`
	PrimaryPositionCode *string         `db:"primary_position_code" json:"primary_position_code" validate:"required"`
	PrimaryPosition     *string         `db:"primary_position" json:"primary_position" validate:"required"`
	Active              *bool           `db:"active" json:"active" validate:"required"`
	MLBDebutDate        *time.Time      `db:"mlb_debut_date" json:"mlb_debut_date"`
	LastPlayedDate      *time.Time      `db:"last_played_date" json:"last_played_date"`
	Details             json.RawMessage `db:"details" json:"details" validate:"required"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}
