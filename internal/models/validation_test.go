package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAtBat() AtBat {
	return AtBat{
		SportID:         11,
		AtBatIndex:      0,
		Outs:            1,
		Balls:           2,
		Strikes:         2,
		TotalPitchCount: 5,
		Inning:          3,
		Result:          json.RawMessage(`{}`),
		Details:         json.RawMessage(`{}`),
		GameMLBID:       900,
		PitcherMLBID:    500,
		BatterMLBID:     600,
	}
}

func TestSchemaValidatorAcceptsValidAtBat(t *testing.T) {
	sv := NewSchemaValidator()
	assert.NoError(t, sv.Validate(validAtBat()))
}

func TestSchemaValidatorCountBounds(t *testing.T) {
	sv := NewSchemaValidator()

	tests := []struct {
		name   string
		mutate func(*AtBat)
	}{
		{"five balls", func(ab *AtBat) { ab.Balls = 5 }},
		{"four strikes", func(ab *AtBat) { ab.Strikes = 4 }},
		{"four outs", func(ab *AtBat) { ab.Outs = 4 }},
		{"negative balls", func(ab *AtBat) { ab.Balls = -1 }},
		{"zero pitches", func(ab *AtBat) { ab.TotalPitchCount = 0 }},
		{"zero inning", func(ab *AtBat) { ab.Inning = 0 }},
		{"missing pitcher", func(ab *AtBat) { ab.PitcherMLBID = 0 }},
		{"missing result", func(ab *AtBat) { ab.Result = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ab := validAtBat()
			tt.mutate(&ab)
			assert.Error(t, sv.Validate(ab))
		})
	}
}

func TestSchemaValidatorNilInternalRefsAllowed(t *testing.T) {
	sv := NewSchemaValidator()
	ab := validAtBat()
	ab.GameID = nil
	ab.PitcherID = nil
	ab.BatterID = nil
	assert.NoError(t, sv.Validate(ab))
}

func TestSchemaValidatorPlayerRequiredFields(t *testing.T) {
	sv := NewSchemaValidator()

	isPlayer := true
	active := true
	birth := time.Date(1994, 7, 5, 0, 0, 0, 0, time.UTC)
	pos := "1"
	posName := "Pitcher"
	player := Player{
		MLBID:               660271,
		FullName:            "Shohei Ohtani",
		IsPlayer:            &isPlayer,
		Active:              &active,
		BirthDate:           &birth,
		PrimaryPositionCode: &pos,
		PrimaryPosition:     &posName,
		Details:             json.RawMessage(`{}`),
	}
	require.NoError(t, sv.Validate(player))

	player.FullName = ""
	err := sv.Validate(player)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FullName")
}

func TestSchemaValidatorPitch(t *testing.T) {
	sv := NewSchemaValidator()

	pitch := Pitch{
		PitchIndex:      0,
		BallCount:       0,
		StrikeCount:     0,
		CallCode:        "B",
		CallDescription: "Ball",
		Details:         json.RawMessage(`{}`),
		AtBatID:         77,
	}
	assert.NoError(t, sv.Validate(pitch))

	pitch.CallCode = ""
	assert.Error(t, sv.Validate(pitch))
}
