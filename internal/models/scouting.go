package models

// PitchScoutingRow is the query projection feeding the scouting reports:
// one pitch joined with its at-bat, game and both players. Handedness and
// strike-zone bounds come from the batter/pitcher rows; the zone bounds are
// read out of the player detail payload and may be absent.
type PitchScoutingRow struct {
	Pitch
	SportID        int
	Season         int
	BatterHand     *string
	PitcherHand    *string
	BatterSZTop    *float64
	BatterSZBottom *float64
}
