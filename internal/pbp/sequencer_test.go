package pbp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

func pitchEvent(balls, strikes int) statsapi.PlayEvent {
	return statsapi.PlayEvent{
		Type:  statsapi.EventTypePitch,
		Count: &statsapi.Count{Balls: balls, Strikes: strikes},
		Details: &statsapi.EventDetails{
			Call: &statsapi.CodeName{Code: "B", Description: "Ball"},
		},
	}
}

func actionEvent(count *statsapi.Count) statsapi.PlayEvent {
	return statsapi.PlayEvent{Type: statsapi.EventTypeAction, Count: count}
}

func TestSequenceStampsPrePitchCount(t *testing.T) {
	play := &statsapi.Play{
		PlayEvents: []statsapi.PlayEvent{
			pitchEvent(1, 0),
			pitchEvent(2, 0),
			actionEvent(&statsapi.Count{Balls: 2, Strikes: 1}),
			pitchEvent(2, 2),
		},
	}

	pitches := Sequence(play, 42)
	require.Len(t, pitches, 3)

	// Each pitch carries the count before it was thrown; the action's
	// snapshot moves the tracker between the second and third pitch.
	assert.Equal(t, 0, pitches[0].BallCount)
	assert.Equal(t, 0, pitches[0].StrikeCount)
	assert.Equal(t, 1, pitches[1].BallCount)
	assert.Equal(t, 0, pitches[1].StrikeCount)
	assert.Equal(t, 2, pitches[2].BallCount)
	assert.Equal(t, 1, pitches[2].StrikeCount)

	for _, p := range pitches {
		assert.Equal(t, int64(42), p.AtBatID)
	}
}

func TestSequencePitchIndexKeepsEventListGaps(t *testing.T) {
	play := &statsapi.Play{
		PlayEvents: []statsapi.PlayEvent{
			pitchEvent(0, 1),
			actionEvent(nil),
			actionEvent(nil),
			pitchEvent(0, 2),
		},
	}

	pitches := Sequence(play, 1)
	require.Len(t, pitches, 2)
	assert.Equal(t, 0, pitches[0].PitchIndex)
	assert.Equal(t, 3, pitches[1].PitchIndex)
}

func TestSequenceActionWithoutCountLeavesTrackerAlone(t *testing.T) {
	play := &statsapi.Play{
		PlayEvents: []statsapi.PlayEvent{
			pitchEvent(1, 0),
			actionEvent(nil),
			pitchEvent(2, 0),
		},
	}

	pitches := Sequence(play, 1)
	require.Len(t, pitches, 2)
	assert.Equal(t, 1, pitches[1].BallCount)
	assert.Equal(t, 0, pitches[1].StrikeCount)
}

func TestSequenceMapsPitchDetails(t *testing.T) {
	zone := 5
	speed := 95.3
	play := &statsapi.Play{
		PlayEvents: []statsapi.PlayEvent{
			{
				Type:  statsapi.EventTypePitch,
				Count: &statsapi.Count{Balls: 0, Strikes: 1},
				Details: &statsapi.EventDetails{
					Type:     &statsapi.CodeName{Code: "FF", Description: "Four-Seam Fastball"},
					Call:     &statsapi.CodeName{Code: "F", Description: "Foul"},
					IsStrike: true,
				},
				PitchData: &statsapi.PitchData{Zone: &zone, StartSpeed: &speed},
			},
		},
	}

	pitches := Sequence(play, 7)
	require.Len(t, pitches, 1)

	p := pitches[0]
	require.NotNil(t, p.PitchTypeCode)
	assert.Equal(t, "FF", *p.PitchTypeCode)
	assert.Equal(t, "F", p.CallCode)
	assert.Equal(t, "Foul", p.CallDescription)
	assert.True(t, p.IsFoul)
	assert.True(t, p.IsStrike)
	assert.False(t, p.IsBall)
	require.NotNil(t, p.Zone)
	assert.Equal(t, 5, *p.Zone)
	require.NotNil(t, p.StartSpeed)
	assert.InDelta(t, 95.3, *p.StartSpeed, 0.001)
}

func TestSequenceNonFoulCallIsNotFoul(t *testing.T) {
	play := &statsapi.Play{
		PlayEvents: []statsapi.PlayEvent{
			{
				Type:    statsapi.EventTypePitch,
				Count:   &statsapi.Count{Balls: 1, Strikes: 0},
				Details: &statsapi.EventDetails{Call: &statsapi.CodeName{Code: "B", Description: "Ball"}, IsBall: true},
			},
		},
	}

	pitches := Sequence(play, 7)
	require.Len(t, pitches, 1)
	assert.False(t, pitches[0].IsFoul)
	assert.True(t, pitches[0].IsBall)
}

func TestSequenceEmptyPlay(t *testing.T) {
	pitches := Sequence(&statsapi.Play{}, 1)
	assert.Empty(t, pitches)
}
