package report

import (
	"encoding/json"

	"github.com/yourusername/mlb-pbp/internal/models"
	"github.com/yourusername/mlb-pbp/internal/statsapi"
)

// Chase thresholds in feet beyond the batter's strike zone, measured from
// the catcher's perspective.
const (
	chaseVerticalMargin = 0.42
	chaseHorizontalEdge = 1.12
)

// Horizontal edge in feet separating inside/middle/outside off the plate.
const locationHorizontalEdge = 0.25

// EffectiveBatterHand resolves a switch hitter to the side they bat from
// against this pitcher: opposite the pitcher's throwing hand.
func EffectiveBatterHand(batterHand, pitcherHand string) string {
	if batterHand != "S" {
		return batterHand
	}
	if pitcherHand == "L" {
		return "R"
	}
	return "L"
}

// Coordinates extracts the plate-crossing location from the pitch's stored
// event payload. Absent coordinates return ok=false.
func Coordinates(pitch *models.Pitch) (px, pz float64, ok bool) {
	var event statsapi.PlayEvent
	if err := json.Unmarshal(pitch.Details, &event); err != nil {
		return 0, 0, false
	}
	if event.PitchData == nil || event.PitchData.Coordinates.PX == nil || event.PitchData.Coordinates.PZ == nil {
		return 0, 0, false
	}
	return *event.PitchData.Coordinates.PX, *event.PitchData.Coordinates.PZ, true
}

// IsChase reports whether an out-of-zone pitch was far enough off the plate
// to count as a chase pitch when offered at. In-zone pitches never qualify.
func IsChase(zone int, px, pz, szTop, szBottom float64) bool {
	if InStrikeZone(zone) {
		return false
	}
	return px < -chaseHorizontalEdge ||
		px > chaseHorizontalEdge ||
		pz < szBottom-chaseVerticalMargin ||
		pz > szTop+chaseVerticalMargin
}

// Location classifies a pitch into a two-letter cell: horizontal
// inside/middle/outside relative to the batter, then vertical
// up/middle/down. In-zone pitches map straight from the zone grid;
// out-of-zone pitches are banded by plate coordinates against the batter's
// strike zone.
func Location(zone int, px, pz, szTop, szBottom float64, batterHand string) string {
	if InStrikeZone(zone) {
		return inZoneLocation(zone, batterHand)
	}
	return outZoneLocation(px, pz, szTop, szBottom, batterHand)
}

// inZoneLocation maps a zone cell through the batter's perspective. Zone
// columns run left to right from the catcher's view: 1/4/7 are the
// right-handed batter's inside column.
func inZoneLocation(zone int, batterHand string) string {
	var horizontal string
	switch zone {
	case 1, 4, 7:
		horizontal = "I"
		if batterHand != "R" {
			horizontal = "O"
		}
	case 2, 5, 8:
		horizontal = "M"
	case 3, 6, 9:
		horizontal = "O"
		if batterHand != "R" {
			horizontal = "I"
		}
	}

	var vertical string
	switch zone {
	case 1, 2, 3:
		vertical = "U"
	case 4, 5, 6:
		vertical = "M"
	case 7, 8, 9:
		vertical = "D"
	}

	return horizontal + vertical
}

// outZoneLocation bands plate coordinates against the batter's strike
// zone. The vertical bands reuse the zone's thirds; the horizontal edge
// flips sign with the batter's side since px is catcher-perspective.
func outZoneLocation(px, pz, szTop, szBottom float64, batterHand string) string {
	bandHeight := (szTop - szBottom) / 3
	upThreshold := szTop - bandHeight
	downThreshold := szBottom + bandHeight

	var horizontal string
	if batterHand == "R" {
		switch {
		case px >= locationHorizontalEdge:
			horizontal = "O"
		case px <= -locationHorizontalEdge:
			horizontal = "I"
		default:
			horizontal = "M"
		}
	} else {
		switch {
		case px <= -locationHorizontalEdge:
			horizontal = "O"
		case px >= locationHorizontalEdge:
			horizontal = "I"
		default:
			horizontal = "M"
		}
	}

	var vertical string
	switch {
	case pz >= upThreshold:
		vertical = "U"
	case pz <= downThreshold:
		vertical = "D"
	default:
		vertical = "M"
	}

	return horizontal + vertical
}
