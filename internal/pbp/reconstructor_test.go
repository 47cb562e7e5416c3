package pbp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

func strptr(s string) *string { return &s }

func walkPlay() *statsapi.Play {
	return &statsapi.Play{
		Result: statsapi.PlayResult{
			Type:      "atBat",
			EventType: strptr("walk"),
			RBI:       0,
			Raw:       json.RawMessage(`{"type":"atBat","eventType":"walk"}`),
		},
		About: statsapi.PlayAbout{
			AtBatIndex:  12,
			Inning:      3,
			IsTopInning: true,
		},
		Matchup: statsapi.Matchup{
			Pitcher: &statsapi.PlayerRef{ID: 500},
			Batter:  &statsapi.PlayerRef{ID: 600},
		},
		PlayEvents: []statsapi.PlayEvent{
			{Type: statsapi.EventTypePitch, Count: &statsapi.Count{Balls: 1, Strikes: 0}},
			{Type: statsapi.EventTypePitch, Count: &statsapi.Count{Balls: 2, Strikes: 0}},
			{Type: statsapi.EventTypeAction},
			{Type: statsapi.EventTypePitch, Count: &statsapi.Count{Balls: 3, Strikes: 0}},
			{Type: statsapi.EventTypePitch, Count: &statsapi.Count{Balls: 4, Strikes: 0, Outs: 1}},
		},
		Raw: json.RawMessage(`{"about":{"atBatIndex":12}}`),
	}
}

func TestBuildAtBatTerminalCountFromLastPitch(t *testing.T) {
	ids := IDMaps{
		Games:   map[int64]int64{999: 10},
		Players: map[int64]int64{500: 1, 600: 2},
	}

	ab, ok := BuildAtBat(walkPlay(), 11, 999, ids)
	require.True(t, ok)

	assert.Equal(t, 4, ab.Balls)
	assert.Equal(t, 0, ab.Strikes)
	assert.Equal(t, 1, ab.Outs)
	assert.Equal(t, 4, ab.TotalPitchCount)
	assert.Equal(t, 12, ab.AtBatIndex)
	assert.Equal(t, 3, ab.Inning)
	assert.True(t, ab.IsTopInning)
	require.NotNil(t, ab.EventType)
	assert.Equal(t, "walk", *ab.EventType)
}

func TestBuildAtBatResolvesInternalIDs(t *testing.T) {
	ids := IDMaps{
		Games:   map[int64]int64{999: 10},
		Players: map[int64]int64{500: 1, 600: 2},
	}

	ab, ok := BuildAtBat(walkPlay(), 11, 999, ids)
	require.True(t, ok)

	require.NotNil(t, ab.GameID)
	assert.Equal(t, int64(10), *ab.GameID)
	assert.Equal(t, int64(999), ab.GameMLBID)
	require.NotNil(t, ab.PitcherID)
	assert.Equal(t, int64(1), *ab.PitcherID)
	assert.Equal(t, int64(500), ab.PitcherMLBID)
	require.NotNil(t, ab.BatterID)
	assert.Equal(t, int64(2), *ab.BatterID)
	assert.Equal(t, int64(600), ab.BatterMLBID)
}

func TestBuildAtBatUnresolvedIDsStayNil(t *testing.T) {
	ab, ok := BuildAtBat(walkPlay(), 11, 999, IDMaps{})
	require.True(t, ok)

	assert.Nil(t, ab.GameID)
	assert.Nil(t, ab.PitcherID)
	assert.Nil(t, ab.BatterID)
	// MLB ids survive regardless
	assert.Equal(t, int64(500), ab.PitcherMLBID)
	assert.Equal(t, int64(600), ab.BatterMLBID)
}

func TestBuildAtBatSkipsPlayWithoutPitches(t *testing.T) {
	play := walkPlay()
	play.PlayEvents = []statsapi.PlayEvent{
		{Type: statsapi.EventTypeAction},
		{Type: statsapi.EventTypeAction},
	}

	ab, ok := BuildAtBat(play, 11, 999, IDMaps{})
	assert.False(t, ok)
	assert.Nil(t, ab)
}

func TestRunnerFlagsFromMovementOrigins(t *testing.T) {
	tests := []struct {
		name    string
		runners []statsapi.Runner
		r1b     bool
		r2b     bool
		r3b     bool
	}{
		{"empty", nil, false, false, false},
		{"batter only", []statsapi.Runner{{Movement: statsapi.RunnerMovement{Start: nil, End: strptr("1B")}}}, false, false, false},
		{"first occupied", []statsapi.Runner{{Movement: statsapi.RunnerMovement{Start: strptr("1B"), End: strptr("2B")}}}, true, false, false},
		{
			"corners",
			[]statsapi.Runner{
				{Movement: statsapi.RunnerMovement{Start: strptr("3B"), End: nil}},
				{Movement: statsapi.RunnerMovement{Start: strptr("1B"), End: strptr("2B")}},
			},
			true, false, true,
		},
		{
			"order independent",
			[]statsapi.Runner{
				{Movement: statsapi.RunnerMovement{Start: strptr("2B"), End: strptr("3B")}},
				{Movement: statsapi.RunnerMovement{Start: nil, End: strptr("1B")}},
			},
			false, true, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r1b, r2b, r3b := runnerFlags(tt.runners)
			assert.Equal(t, tt.r1b, r1b)
			assert.Equal(t, tt.r2b, r2b)
			assert.Equal(t, tt.r3b, r3b)
		})
	}
}

func TestBuildAtBatKeepsRawPayloads(t *testing.T) {
	ab, ok := BuildAtBat(walkPlay(), 11, 999, IDMaps{})
	require.True(t, ok)
	assert.JSONEq(t, `{"about":{"atBatIndex":12}}`, string(ab.Details))
	assert.JSONEq(t, `{"type":"atBat","eventType":"walk"}`, string(ab.Result))
}
