// Package configuration carries the parsed product configuration that the
// pricing, fabric and job-card services operate on. Free-text selections are
// parsed into tagged types once, at the ingestion boundary, so downstream
// calculators never re-parse strings.
package configuration

import (
	"errors"

	"github.com/bwmarrin/snowflake"
)

var (
	ErrProductRequired   = errors.New("product id is required")
	ErrFabricRequired    = errors.New("fabric configuration is required")
	ErrInvalidDimensions = errors.New("invalid dimensions detected")
)

// ColourMode selects single or dual colour fabric plans.
type ColourMode string

const (
	SingleColour ColourMode = "SINGLE_COLOUR"
	DualColour   ColourMode = "DUAL_COLOUR"
)

// Section is one seat section of the build.
type Section struct {
	Position string
	Seater   SeaterType
	Quantity int
	WidthIn  float64
}

// Lounger describes the optional lounger selection.
type Lounger struct {
	Required bool
	Size     LoungerSize
	Storage  bool
	Quantity int
}

// Console describes the optional console selection.
type Console struct {
	Required   bool
	Size       ConsoleSize
	Quantity   int
	Placements []string
}

// Pillows describes the optional pillow selection.
type Pillows struct {
	Required bool
	Type     PillowType
	Quantity int
}

// FabricPlan holds the fabric codes per region. Empty codes are skipped.
type FabricPlan struct {
	ColourMode    ColourMode
	StructureCode string
	BackrestCode  string
	SeatCode      string
	HeadrestCode  string
}

// Codes returns the non-empty fabric codes in region order.
func (p *FabricPlan) Codes() []string {
	if p == nil {
		return nil
	}
	var codes []string
	for _, code := range []string{p.StructureCode, p.BackrestCode, p.SeatCode, p.HeadrestCode} {
		if code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Dimensions holds custom seat dimensions in inches.
type Dimensions struct {
	SeatDepthIn  int
	SeatWidthIn  int
	SeatHeightIn int
}

// Configuration is the full parsed build selection for one product.
type Configuration struct {
	ProductID  snowflake.ID
	Category   Category
	Shape      Shape
	Sections   []Section
	Lounger    *Lounger
	Console    *Console
	Pillows    *Pillows
	Fabric     *FabricPlan
	FoamType   string
	Dimensions Dimensions
	DummySeats int

	AccessoryCodes []string
	DiscountCode   string
}

// Validate enforces the fatal input preconditions. It runs before any
// store access so invalid input never costs a round trip.
func (c *Configuration) Validate() error {
	if c == nil || c.ProductID == 0 {
		return ErrProductRequired
	}
	if c.Fabric == nil {
		return ErrFabricRequired
	}
	if c.Dimensions.SeatDepthIn < 0 || c.Dimensions.SeatWidthIn < 0 {
		return ErrInvalidDimensions
	}
	return nil
}

// SeatCount sums seats across sections, corner and backrest included.
// Sections without a recognizable seat count still count one seat per unit.
func (c *Configuration) SeatCount() int {
	total := 0
	for _, section := range c.Sections {
		if section.Quantity <= 0 || section.Seater.Kind == SeaterNone {
			continue
		}
		seats := section.Seater.Seats
		if seats < 1 {
			seats = 1
		}
		total += seats * section.Quantity
	}
	return total
}
