package console

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shushruth21/estre/internal/configuration"
)

func TestIsPositionAvailable(t *testing.T) {
	fourSeater := configuration.ParseSeaterType("4-Seater")

	assert.False(t, IsPositionAvailable(false, fourSeater, 1))
	assert.True(t, IsPositionAvailable(true, fourSeater, 1))
	assert.True(t, IsPositionAvailable(true, fourSeater, 3))
	assert.False(t, IsPositionAvailable(true, fourSeater, 4))

	twoSeater := configuration.ParseSeaterType("2-Seater")
	assert.True(t, IsPositionAvailable(true, twoSeater, 1))
	assert.False(t, IsPositionAvailable(true, twoSeater, 2))
}

func TestCornerAndBackrestNeverHostConsoles(t *testing.T) {
	for _, raw := range []string{"Corner", "Backrest 2-Seater", "none", ""} {
		seater := configuration.ParseSeaterType(raw)
		for n := 1; n <= 4; n++ {
			assert.False(t, IsPositionAvailable(true, seater, n), "seater=%q slot=%d", raw, n)
		}
	}
}

func TestAvailabilityIsMonotonic(t *testing.T) {
	// If slot n is legal, slot n-1 must be too: consoles fill front to back.
	for seats := 0; seats <= 6; seats++ {
		seater := configuration.ParseSeaterType(fmt.Sprintf("%d-Seater", seats))
		for n := 2; n <= 4; n++ {
			if IsPositionAvailable(true, seater, n) {
				assert.True(t, IsPositionAvailable(true, seater, n-1),
					"seats=%d slot=%d legal but slot=%d not", seats, n, n-1)
			}
		}
	}
}

func TestGeneratePlacements(t *testing.T) {
	seater := configuration.ParseSeaterType("3-Seater")
	placements := GeneratePlacements(true, seater, "front", "front")

	if assert.Len(t, placements, 2) {
		assert.Equal(t, "After 1st Seat from Left", placements[0].Label)
		assert.Equal(t, "front_1", placements[0].Value)
		assert.Equal(t, "After 2nd Seat from Left", placements[1].Label)
		assert.Equal(t, "front_2", placements[1].Value)
	}
}

func TestGenerateAllPlacementsGatesSideSections(t *testing.T) {
	cfg := &configuration.Configuration{
		Shape:   configuration.ParseShape("Standard"),
		Console: &configuration.Console{Required: true},
		Sections: []configuration.Section{
			{Position: "front", Seater: configuration.ParseSeaterType("3-Seater"), Quantity: 1},
			{Position: "left", Seater: configuration.ParseSeaterType("3-Seater"), Quantity: 1},
		},
	}

	placements := GenerateAllPlacements(cfg)
	for _, p := range placements {
		assert.NotEqual(t, "left", p.Section, "side section must be gated on standard shape")
	}
	assert.Len(t, placements, 2)

	cfg.Shape = configuration.ParseShape("L-Shape")
	assert.Len(t, GenerateAllPlacements(cfg), 4)
}

func TestGenerateAllPlacementsWithoutConsole(t *testing.T) {
	cfg := &configuration.Configuration{
		Sections: []configuration.Section{
			{Position: "front", Seater: configuration.ParseSeaterType("4-Seater"), Quantity: 1},
		},
	}
	assert.Nil(t, GenerateAllPlacements(cfg))
}
