// Package console computes which console slots are legal for a seat-section
// configuration. Everything here is pure and deterministic; placements are
// recomputed on demand and never persisted.
package console

import (
	"fmt"

	"github.com/shushruth21/estre/internal/configuration"
)

// Placement is one legal console slot in one section.
type Placement struct {
	Section       string `json:"section"`
	Position      string `json:"position"`
	Label         string `json:"label"`
	Value         string `json:"value"`
	ConsoleNumber int    `json:"console_number"`
}

const maxConsoleSlots = 4

// IsPositionAvailable reports whether console slot n is legal for the given
// seater. A console sits after the nth seat from the left and needs a seat on
// both sides, so slot n requires at least n+1 seats.
func IsPositionAvailable(consoleRequired bool, seater configuration.SeaterType, consoleNumber int) bool {
	if !consoleRequired {
		return false
	}
	if consoleNumber < 1 || consoleNumber > maxConsoleSlots {
		return false
	}
	switch seater.Kind {
	case configuration.SeaterNone, configuration.SeaterCorner, configuration.SeaterBackrest:
		return false
	}
	return seater.Seats >= consoleNumber+1
}

// GeneratePlacements enumerates the legal slots for one section.
func GeneratePlacements(consoleRequired bool, seater configuration.SeaterType, section, position string) []Placement {
	var placements []Placement
	for n := 1; n <= maxConsoleSlots; n++ {
		if !IsPositionAvailable(consoleRequired, seater, n) {
			continue
		}
		placements = append(placements, Placement{
			Section:       section,
			Position:      position,
			Label:         fmt.Sprintf("After %s Seat from Left", ordinal(n)),
			Value:         fmt.Sprintf("%s_%d", section, n),
			ConsoleNumber: n,
		})
	}
	return placements
}

// GenerateAllPlacements aggregates placements across every section of the
// configuration. Side sections only participate for shapes that have them.
func GenerateAllPlacements(cfg *configuration.Configuration) []Placement {
	if cfg == nil || cfg.Console == nil || !cfg.Console.Required {
		return nil
	}

	var placements []Placement
	for i, section := range cfg.Sections {
		if isSidePosition(section.Position) && !cfg.Shape.HasSideSections() {
			continue
		}
		key := section.Position
		if key == "" {
			key = fmt.Sprintf("section%d", i+1)
		}
		placements = append(placements,
			GeneratePlacements(cfg.Console.Required, section.Seater, key, section.Position)...)
	}
	return placements
}

func isSidePosition(position string) bool {
	switch position {
	case "left", "right", "combo":
		return true
	default:
		return false
	}
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
