// Package pbp derives structured at-bat and pitch records from raw
// play-by-play payloads.
package pbp

import (
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// Runner-movement origin bases that set the occupancy flags.
const (
	baseFirst  = "1B"
	baseSecond = "2B"
	baseThird  = "3B"
)

// IDMaps holds the external-to-internal id lookups the reconstructor
// resolves against. They are built once per run and never mutated while a
// stage is in flight.
type IDMaps struct {
	Games   map[int64]int64 // game mlb_id -> games.id
	Players map[int64]int64 // player mlb_id -> players.id
}

// BuildAtBat reconstructs one at-bat from a raw play. A play with no pitch
// events is not an at-bat and yields (nil, false): plays that end purely on
// non-pitch events are skipped entirely.
//
// The terminal count comes from the last pitch event's snapshot, not from
// recounting. Unresolvable pitcher/batter/game ids leave the internal
// reference nil; the record is still built and the validation gate decides
// its fate.
func BuildAtBat(play *statsapi.Play, sportID int, gameMLBID int64, ids IDMaps) (*models.AtBat, bool) {
	var pitchCount int
	var lastPitch *statsapi.PlayEvent
	for i := range play.PlayEvents {
		if play.PlayEvents[i].IsPitch() {
			pitchCount++
			lastPitch = &play.PlayEvents[i]
		}
	}
	if pitchCount == 0 {
		return nil, false
	}

	var endCount statsapi.Count
	if lastPitch.Count != nil {
		endCount = *lastPitch.Count
	}

	ab := &models.AtBat{
		SportID:         sportID,
		AtBatIndex:      play.About.AtBatIndex,
		HasOut:          play.About.HasOut,
		Outs:            endCount.Outs,
		Balls:           endCount.Balls,
		Strikes:         endCount.Strikes,
		TotalPitchCount: pitchCount,
		Inning:          play.About.Inning,
		IsTopInning:     play.About.IsTopInning,
		Result:          play.Result.Raw,
		RBI:             play.Result.RBI,
		EventType:       play.Result.EventType,
		IsScoringPlay:   play.About.IsScoringPlay,
		Details:         play.Raw,
		GameMLBID:       gameMLBID,
	}

	ab.R1B, ab.R2B, ab.R3B = runnerFlags(play.Runners)

	if id, ok := ids.Games[gameMLBID]; ok {
		ab.GameID = &id
	}
	if play.Matchup.Pitcher != nil {
		ab.PitcherMLBID = play.Matchup.Pitcher.ID
		if id, ok := ids.Players[play.Matchup.Pitcher.ID]; ok {
			ab.PitcherID = &id
		}
	}
	if play.Matchup.Batter != nil {
		ab.BatterMLBID = play.Matchup.Batter.ID
		if id, ok := ids.Players[play.Matchup.Batter.ID]; ok {
			ab.BatterID = &id
		}
	}

	return ab, true
}

// runnerFlags derives base occupancy from movement origins: a base flag is
// true iff at least one movement started there. Order of the movement list
// does not matter.
func runnerFlags(runners []statsapi.Runner) (r1b, r2b, r3b bool) {
	for _, r := range runners {
		if r.Movement.Start == nil {
			continue
		}
		switch *r.Movement.Start {
		case baseFirst:
			r1b = true
		case baseSecond:
			r2b = true
		case baseThird:
			r3b = true
		}
	}
	return r1b, r2b, r3b
}
