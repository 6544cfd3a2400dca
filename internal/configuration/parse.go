package configuration

import "strings"

// Category is the closed set of product categories.
type Category string

const (
	CategoryUnknown     Category = "UNKNOWN"
	CategorySofa        Category = "SOFA"
	CategorySofaBed     Category = "SOFA_BED"
	CategoryBed         Category = "BED"
	CategoryKidsBed     Category = "KIDS_BED"
	CategoryRecliner    Category = "RECLINER"
	CategoryCinemaChair Category = "CINEMA_CHAIR"
	CategoryArmChair    Category = "ARM_CHAIR"
	CategoryDiningChair Category = "DINING_CHAIR"
	CategoryBench       Category = "BENCH"
	CategoryPouffe      Category = "POUFFE"
)

// ParseCategory normalizes case, underscores and spaces before matching.
// Unrecognized input maps to CategoryUnknown, never an error.
func ParseCategory(raw string) Category {
	normalized := strings.ToLower(raw)
	normalized = strings.ReplaceAll(normalized, "_", "")
	normalized = strings.ReplaceAll(normalized, "-", "")
	normalized = strings.ReplaceAll(normalized, " ", "")

	switch normalized {
	case "sofa":
		return CategorySofa
	case "sofabed":
		return CategorySofaBed
	case "bed":
		return CategoryBed
	case "kidsbed":
		return CategoryKidsBed
	case "recliner":
		return CategoryRecliner
	case "cinemachair":
		return CategoryCinemaChair
	case "armchair":
		return CategoryArmChair
	case "diningchair":
		return CategoryDiningChair
	case "bench":
		return CategoryBench
	case "pouffe":
		return CategoryPouffe
	default:
		return CategoryUnknown
	}
}

// FormulaCategory is the key used against the pricing formula store.
func (c Category) FormulaCategory() string {
	return strings.ToLower(string(c))
}

// SeaterKind classifies a seat section.
type SeaterKind int

const (
	SeaterNone SeaterKind = iota
	SeaterRegular
	SeaterCorner
	SeaterBackrest
)

// SeaterType is a parsed seater selection such as "4-Seater" or
// "Backrest 2-Seater". Seats is the leading digit run, zero when absent.
type SeaterType struct {
	Kind  SeaterKind
	Seats int
	Raw   string
}

// ParseSeaterType classifies the free-text seater selection once.
func ParseSeaterType(raw string) SeaterType {
	trimmed := strings.TrimSpace(raw)
	lower := strings.ToLower(trimmed)
	if trimmed == "" || lower == "none" {
		return SeaterType{Kind: SeaterNone, Raw: raw}
	}

	seats := leadingDigitRun(trimmed)
	switch {
	case strings.Contains(lower, "corner"):
		return SeaterType{Kind: SeaterCorner, Seats: seats, Raw: raw}
	case strings.Contains(lower, "backrest"):
		return SeaterType{Kind: SeaterBackrest, Seats: seats, Raw: raw}
	default:
		return SeaterType{Kind: SeaterRegular, Seats: seats, Raw: raw}
	}
}

// leadingDigitRun extracts the first run of digits anywhere in the string.
func leadingDigitRun(s string) int {
	value := 0
	seen := false
	for _, r := range s {
		if r >= '0' && r <= '9' {
			value = value*10 + int(r-'0')
			seen = true
			continue
		}
		if seen {
			break
		}
	}
	if !seen {
		return 0
	}
	return value
}

// LoungerSize is the closed set of lounger lengths.
type LoungerSize int

const (
	LoungerSizeUnknown LoungerSize = iota
	LoungerSize5Ft6
	LoungerSize6Ft
	LoungerSize6Ft6
	LoungerSize7Ft
)

// ParseLoungerSize matches the most specific size first so "6 ft 6 in"
// never falls through to "6 ft".
func ParseLoungerSize(raw string) LoungerSize {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	switch {
	case strings.Contains(normalized, "7 ft"):
		return LoungerSize7Ft
	case strings.Contains(normalized, "6 ft 6"):
		return LoungerSize6Ft6
	case strings.Contains(normalized, "5 ft 6"):
		return LoungerSize5Ft6
	case strings.Contains(normalized, "6 ft"):
		return LoungerSize6Ft
	default:
		return LoungerSizeUnknown
	}
}

// UpgradeSteps is the number of 6-inch increments priced on top of the
// lounger base price.
func (s LoungerSize) UpgradeSteps() int {
	switch s {
	case LoungerSize5Ft6:
		return 1
	case LoungerSize6Ft:
		return 2
	case LoungerSize6Ft6:
		return 3
	case LoungerSize7Ft:
		return 4
	default:
		return 0
	}
}

func (s LoungerSize) String() string {
	switch s {
	case LoungerSize5Ft6:
		return "5 ft 6 in"
	case LoungerSize6Ft:
		return "6 ft"
	case LoungerSize6Ft6:
		return "6 ft 6 in"
	case LoungerSize7Ft:
		return "7 ft"
	default:
		return "unknown"
	}
}

// ConsoleSize is the console width selection.
type ConsoleSize int

const (
	Console10In ConsoleSize = iota
	Console6In
)

// ParseConsoleSize keeps the historical exact-match rule: only the literal
// 6-inch selection maps to the 6-inch price, everything else is 10 inch.
func ParseConsoleSize(raw string) ConsoleSize {
	if strings.TrimSpace(raw) == "Console-6 in" {
		return Console6In
	}
	return Console10In
}

func (s ConsoleSize) String() string {
	if s == Console6In {
		return "Console-6 in"
	}
	return "Console-10 in"
}

// PillowType is the pillow style selection.
type PillowType int

const (
	PillowSimple PillowType = iota
	PillowDiamondQuilted
	PillowBeltQuilted
	PillowTassels
)

// ParsePillowType matches the style name, defaulting to Simple.
func ParsePillowType(raw string) PillowType {
	normalized := strings.ToLower(strings.Join(strings.Fields(raw), " "))
	switch normalized {
	case "diamond quilted":
		return PillowDiamondQuilted
	case "belt quilted":
		return PillowBeltQuilted
	case "tassels":
		return PillowTassels
	default:
		return PillowSimple
	}
}

func (p PillowType) String() string {
	switch p {
	case PillowDiamondQuilted:
		return "Diamond Quilted"
	case PillowBeltQuilted:
		return "Belt Quilted"
	case PillowTassels:
		return "Tassels"
	default:
		return "Simple"
	}
}

// Shape is the overall sectional shape.
type Shape int

const (
	ShapeStandard Shape = iota
	ShapeLShape
	ShapeUShape
	ShapeCombo
)

// ParseShape normalizes separators to spaces before matching, so
// "L-Shape", "l_shape" and "L SHAPE" agree.
func ParseShape(raw string) Shape {
	normalized := strings.ToUpper(raw)
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.Join(strings.Fields(normalized), " ")

	switch normalized {
	case "L SHAPE":
		return ShapeLShape
	case "U SHAPE":
		return ShapeUShape
	case "COMBO":
		return ShapeCombo
	default:
		return ShapeStandard
	}
}

// HasSideSections reports whether left/right sections participate in
// console placement for this shape.
func (s Shape) HasSideSections() bool {
	switch s {
	case ShapeLShape, ShapeUShape, ShapeCombo:
		return true
	default:
		return false
	}
}
