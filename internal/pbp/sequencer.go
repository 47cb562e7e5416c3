package pbp

import (
	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

const foulCallCode = "F"

// Sequence walks the full event list of a persisted at-bat's raw play and
// emits one Pitch per pitch event.
//
// The running count starts at 0-0 and is overwritten by every event that
// carries a count snapshot, pitch or not; the event stream is the count
// authority and there is no independent increment logic. A pitch is stamped
// with the count before it was thrown, then the tracker moves to the
// event's own ending snapshot. Non-pitch events (substitutions and other
// actions) advance the tracker without emitting anything, so pitch indices
// keep the gaps from skipped events.
func Sequence(play *statsapi.Play, atBatID int64) []models.Pitch {
	var pitches []models.Pitch
	current := statsapi.Count{}

	for i := range play.PlayEvents {
		event := &play.PlayEvents[i]

		if !event.IsPitch() {
			if event.Count != nil {
				current.Balls = event.Count.Balls
				current.Strikes = event.Count.Strikes
			}
			continue
		}

		pitches = append(pitches, buildPitch(event, i, current, atBatID))

		if event.Count != nil {
			current.Balls = event.Count.Balls
			current.Strikes = event.Count.Strikes
		}
	}

	return pitches
}

// buildPitch maps one pitch event onto a Pitch record. Every nested detail
// field is independently optional.
func buildPitch(event *statsapi.PlayEvent, index int, startCount statsapi.Count, atBatID int64) models.Pitch {
	p := models.Pitch{
		PitchIndex:  index,
		BallCount:   startCount.Balls,
		StrikeCount: startCount.Strikes,
		Details:     event.Raw,
		AtBatID:     atBatID,
	}

	if d := event.Details; d != nil {
		if d.Type != nil {
			p.PitchTypeCode = &d.Type.Code
			p.PitchTypeDescription = &d.Type.Description
		}
		if d.Call != nil {
			p.CallCode = d.Call.Code
			p.CallDescription = d.Call.Description
			p.IsFoul = d.Call.Code == foulCallCode
		}
		p.IsBall = d.IsBall
		p.IsStrike = d.IsStrike
		p.IsOut = d.IsOut
		p.IsInPlay = d.IsInPlay
	}

	if pd := event.PitchData; pd != nil {
		p.Zone = pd.Zone
		p.StartSpeed = pd.StartSpeed
	}

	return p
}
