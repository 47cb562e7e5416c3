package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveBatterHand(t *testing.T) {
	tests := []struct {
		name        string
		batterHand  string
		pitcherHand string
		want        string
	}{
		{"righty stays", "R", "R", "R"},
		{"lefty stays", "L", "R", "L"},
		{"switch vs lefty bats right", "S", "L", "R"},
		{"switch vs righty bats left", "S", "R", "L"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EffectiveBatterHand(tt.batterHand, tt.pitcherHand))
		})
	}
}

func TestInZoneLocationGrid(t *testing.T) {
	// Zone columns run left to right from the catcher's view; 1/4/7 is
	// inside for a right-handed batter and outside for a lefty.
	tests := []struct {
		zone int
		hand string
		want string
	}{
		{1, "R", "IU"},
		{4, "R", "IM"},
		{7, "R", "ID"},
		{2, "R", "MU"},
		{5, "R", "MM"},
		{8, "R", "MD"},
		{3, "R", "OU"},
		{6, "R", "OM"},
		{9, "R", "OD"},
		{1, "L", "OU"},
		{3, "L", "IU"},
		{5, "L", "MM"},
	}
	for _, tt := range tests {
		got := Location(tt.zone, 0, 0, 3.4, 1.6, tt.hand)
		assert.Equal(t, tt.want, got, "zone %d hand %s", tt.zone, tt.hand)
	}
}

func TestOutZoneLocationBanding(t *testing.T) {
	const szTop, szBottom = 3.4, 1.6 // band height 0.6

	tests := []struct {
		name string
		px   float64
		pz   float64
		hand string
		want string
	}{
		{"high and outside righty", 0.5, 3.5, "R", "OU"},
		{"high and outside lefty", -0.5, 3.5, "L", "OU"},
		{"low and inside righty", -0.5, 1.0, "R", "ID"},
		{"middle band", 0.0, 2.5, "R", "MM"},
		{"up threshold boundary", 0.0, 2.8, "R", "MU"},
		{"down threshold boundary", 0.0, 2.2, "R", "MD"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Location(11, tt.px, tt.pz, szTop, szBottom, tt.hand)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsChase(t *testing.T) {
	const szTop, szBottom = 3.4, 1.6

	tests := []struct {
		name string
		zone int
		px   float64
		pz   float64
		want bool
	}{
		{"in zone never chases", 5, 5.0, 5.0, false},
		{"just off the plate", 11, 0.9, 2.5, false},
		{"wide outside", 12, 1.3, 2.5, true},
		{"wide inside", 13, -1.3, 2.5, true},
		{"below the knees", 14, 0.0, 1.0, true},
		{"above the letters", 11, 0.0, 4.0, true},
		{"inside the margins", 14, 0.0, 1.2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsChase(tt.zone, tt.px, tt.pz, szTop, szBottom))
		})
	}
}

func TestZoneMembership(t *testing.T) {
	for z := 1; z <= 9; z++ {
		assert.True(t, InStrikeZone(z))
		assert.False(t, OutsideStrikeZone(z))
	}
	for _, z := range []int{11, 12, 13, 14} {
		assert.False(t, InStrikeZone(z))
		assert.True(t, OutsideStrikeZone(z))
	}
	assert.False(t, InStrikeZone(10))
	assert.False(t, OutsideStrikeZone(10))
}

func TestSwungAt(t *testing.T) {
	assert.True(t, SwungAt("S"))
	assert.True(t, SwungAt("F"))
	assert.True(t, SwungAt("X"))
	assert.False(t, SwungAt("B"))
	assert.False(t, SwungAt("C"))
}
