// Package report builds pitcher scouting reports from persisted pitch data.
package report

// LeagueInfo names one supported league.
type LeagueInfo struct {
	Name string
	Code string
}

// LeagueMap enumerates the leagues the pipeline ingests, keyed by sport id.
var LeagueMap = map[int]LeagueInfo{
	1:  {Name: "Major League Baseball", Code: "mlb"},
	11: {Name: "Triple-A", Code: "aaa"},
	12: {Name: "Double-A", Code: "aax"},
	13: {Name: "High-A", Code: "afa"},
	14: {Name: "Single-A", Code: "afx"},
	16: {Name: "Rookie", Code: "rok"},
}

// Pitch type groupings by MLB pitch type code.
var (
	FastballPitchCodes = []string{"FA", "FC", "FF", "FT", "SI"}
	BreakingPitchCodes = []string{"CS", "CU", "FO", "FS", "KC", "KN", "SC", "SL", "ST", "SV"}
	OffspeedPitchCodes = append(append([]string{}, BreakingPitchCodes...), "CH", "EP")
)

// Zones 1-9 form the rulebook strike zone grid; 11-14 are the outside
// quadrants.
var (
	strikeZoneZones  = map[int]bool{1: true, 2: true, 3: true, 4: true, 5: true, 6: true, 7: true, 8: true, 9: true}
	outsideZoneZones = map[int]bool{11: true, 12: true, 13: true, 14: true}
)

// InStrikeZone reports whether the zone is one of the nine in-zone cells.
func InStrikeZone(zone int) bool {
	return strikeZoneZones[zone]
}

// OutsideStrikeZone reports whether the zone is one of the outside quadrants.
func OutsideStrikeZone(zone int) bool {
	return outsideZoneZones[zone]
}

// Call codes where the batter offered at the pitch.
var swungAtCallCodes = map[string]bool{
	"D": true, "E": true, "F": true, "J": true, "L": true,
	"M": true, "O": true, "Q": true, "R": true, "S": true,
	"T": true, "W": true, "X": true, "Y": true, "Z": true,
}

// SwungAt reports whether the call code records a swing.
func SwungAt(callCode string) bool {
	return swungAtCallCodes[callCode]
}
