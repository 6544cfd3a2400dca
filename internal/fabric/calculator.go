// Package fabric computes fabric consumption per configuration. The
// calculator is pure: it reads category constants (with product-level
// overrides) and the parsed configuration, and emits one entry per
// fabric-consuming part.
package fabric

import (
	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
)

// DefaultWastePercentage is applied to every entry independently.
const DefaultWastePercentage = 10.0

// StandardFabricWidthM is the 54 inch bolt width. Documentation only; the
// meter math never uses it.
const StandardFabricWidthM = 1.4

// Calculation is the fabric requirement of one part, waste-adjusted.
type Calculation struct {
	ItemName        string  `json:"item_name"`
	Width           float64 `json:"width"`
	Length          float64 `json:"length"`
	Quantity        int     `json:"quantity"`
	TotalMeters     float64 `json:"total_meters"`
	WastePercentage float64 `json:"waste_percentage"`
	FinalMeters     float64 `json:"final_meters"`
}

// Per-category fallbacks, used when the product carries no override.
const (
	defaultFirstSeatMeters      = 6.0
	defaultAdditionalSeatMeters = 3.0
	defaultCornerSeatMeters     = 7.0
	defaultBackrestSeatMeters   = 2.0
	defaultLoungerMeters        = 5.5
	defaultConsoleMeters        = 1.5
	defaultHeadboardMeters      = 4.0
	defaultFrameMeters          = 6.0
	defaultStorageMeters        = 2.5
	defaultHeadrestMeters       = 1.0
	defaultReclinerFirstMeters  = 8.0
	defaultReclinerAddlMeters   = 5.0
	defaultChairMeters          = 4.0
	defaultBenchMeters          = 3.0
)

// CalculateRequirements dispatches on category. Unknown categories yield
// an empty slice, never an error.
func CalculateRequirements(category configuration.Category, reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	if cfg == nil {
		return nil
	}

	switch category {
	case configuration.CategorySofa, configuration.CategorySofaBed:
		return sofaRequirements(reqs, cfg)
	case configuration.CategoryBed, configuration.CategoryKidsBed:
		return bedRequirements(reqs, cfg)
	case configuration.CategoryRecliner, configuration.CategoryCinemaChair:
		return reclinerRequirements(reqs, cfg)
	case configuration.CategoryArmChair, configuration.CategoryDiningChair:
		return chairRequirements(reqs, cfg)
	case configuration.CategoryBench, configuration.CategoryPouffe:
		return benchRequirements(reqs, cfg)
	default:
		return []Calculation{}
	}
}

// TotalMeters sums finalMeters across entries. This is the authoritative
// fabric requirement for a configuration.
func TotalMeters(entries []Calculation) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.FinalMeters
	}
	return total
}

func sofaRequirements(reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	firstSeat := orDefault(reqs.FirstSeatMeters, defaultFirstSeatMeters)
	additional := orDefault(reqs.AdditionalSeatMeters, defaultAdditionalSeatMeters)
	corner := orDefault(reqs.CornerSeatMeters, defaultCornerSeatMeters)
	backrest := orDefault(reqs.BackrestSeatMeters, defaultBackrestSeatMeters)

	var entries []Calculation
	firstSeatPriced := false
	for _, section := range cfg.Sections {
		if section.Quantity <= 0 || section.Seater.Kind == configuration.SeaterNone {
			continue
		}
		seats := section.Seater.Seats
		if seats < 1 {
			seats = 1
		}

		switch section.Seater.Kind {
		case configuration.SeaterCorner:
			entries = append(entries, entry(
				positionLabel(section.Position)+" Corner Seat",
				corner*float64(seats), section.Quantity))
		case configuration.SeaterBackrest:
			entries = append(entries, entry(
				positionLabel(section.Position)+" Backrest Seats",
				backrest*float64(seats), section.Quantity))
		default:
			meters := additional * float64(seats)
			if !firstSeatPriced {
				meters = firstSeat + additional*float64(seats-1)
				firstSeatPriced = true
			}
			entries = append(entries, entry(
				positionLabel(section.Position)+" Seats",
				meters, section.Quantity))
		}
	}

	if cfg.Lounger != nil && cfg.Lounger.Required && cfg.Lounger.Quantity > 0 {
		entries = append(entries, entry("Lounger",
			orDefault(reqs.LoungerMeters, defaultLoungerMeters), cfg.Lounger.Quantity))
	}
	if cfg.Console != nil && cfg.Console.Required && cfg.Console.Quantity > 0 {
		entries = append(entries, entry("Console",
			orDefault(reqs.ConsoleMeters, defaultConsoleMeters), cfg.Console.Quantity))
	}
	if cfg.DummySeats > 0 {
		entries = append(entries, entry("Dummy Seats", additional, cfg.DummySeats))
	}
	return entries
}

func bedRequirements(reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	entries := []Calculation{
		entry("Headboard", orDefault(reqs.HeadboardMeters, defaultHeadboardMeters), 1),
		entry("Bed Frame", orDefault(reqs.FrameMeters, defaultFrameMeters), 1),
	}
	// Storage upholstery only applies when the product declares it.
	if reqs.StorageMeters != nil {
		entries = append(entries, entry("Storage", *reqs.StorageMeters, 1))
	}
	return entries
}

func reclinerRequirements(reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	firstSeat := orDefault(reqs.FirstSeatMeters, defaultReclinerFirstMeters)
	additional := orDefault(reqs.AdditionalSeatMeters, defaultReclinerAddlMeters)

	seats := cfg.SeatCount()
	if seats < 1 {
		seats = 1
	}

	entries := []Calculation{
		entry("Recliner Seats", firstSeat+additional*float64(seats-1), 1),
	}
	if cfg.Fabric != nil && cfg.Fabric.HeadrestCode != "" {
		entries = append(entries, entry("Headrests",
			orDefault(reqs.HeadrestMeters, defaultHeadrestMeters), seats))
	}
	return entries
}

func chairRequirements(reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	quantity := sectionQuantity(cfg)
	return []Calculation{
		entry("Chair", orDefault(reqs.FirstSeatMeters, defaultChairMeters), quantity),
	}
}

func benchRequirements(reqs catalogdomain.FabricRequirements, cfg *configuration.Configuration) []Calculation {
	quantity := sectionQuantity(cfg)
	return []Calculation{
		entry("Seat", orDefault(reqs.FirstSeatMeters, defaultBenchMeters), quantity),
	}
}

func sectionQuantity(cfg *configuration.Configuration) int {
	total := 0
	for _, section := range cfg.Sections {
		if section.Quantity > 0 {
			total += section.Quantity
		}
	}
	if total < 1 {
		total = 1
	}
	return total
}

func entry(name string, metersPerUnit float64, quantity int) Calculation {
	total := metersPerUnit * float64(quantity)
	return Calculation{
		ItemName:        name,
		Width:           StandardFabricWidthM,
		Length:          metersPerUnit,
		Quantity:        quantity,
		TotalMeters:     total,
		WastePercentage: DefaultWastePercentage,
		FinalMeters:     total * (1 + DefaultWastePercentage/100),
	}
}

func positionLabel(position string) string {
	switch position {
	case "front", "":
		return "Front"
	case "left":
		return "Left"
	case "right":
		return "Right"
	case "combo":
		return "Combo"
	default:
		return position
	}
}

func orDefault(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}
