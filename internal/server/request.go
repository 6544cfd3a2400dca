package server

import (
	"github.com/bwmarrin/snowflake"

	"github.com/shushruth21/estre/internal/configuration"
)

// configurationRequest is the wire shape of a product configuration. The
// free-text selections are parsed into tagged types here, once, so the
// services never see raw strings.
type configurationRequest struct {
	ProductID      string             `json:"product_id"`
	Category       string             `json:"category"`
	Shape          string             `json:"shape"`
	Sections       []sectionRequest   `json:"sections"`
	Lounger        *loungerRequest    `json:"lounger,omitempty"`
	Console        *consoleRequest    `json:"console,omitempty"`
	Pillows        *pillowsRequest    `json:"pillows,omitempty"`
	Fabric         *fabricRequest     `json:"fabric,omitempty"`
	FoamType       string             `json:"foam_type,omitempty"`
	Dimensions     dimensionsRequest  `json:"dimensions"`
	DummySeats     int                `json:"dummy_seats,omitempty"`
	AccessoryCodes []string           `json:"accessory_codes,omitempty"`
	DiscountCode   string             `json:"discount_code,omitempty"`
}

type sectionRequest struct {
	Position   string  `json:"position"`
	SeaterType string  `json:"seater_type"`
	Quantity   int     `json:"quantity"`
	WidthIn    float64 `json:"width_in,omitempty"`
}

type loungerRequest struct {
	Required bool   `json:"required"`
	Size     string `json:"size"`
	Storage  string `json:"storage"`
	Quantity int    `json:"quantity"`
}

type consoleRequest struct {
	Required   bool     `json:"required"`
	Size       string   `json:"size"`
	Quantity   int      `json:"quantity"`
	Placements []string `json:"placements,omitempty"`
}

type pillowsRequest struct {
	Required bool   `json:"required"`
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
}

type fabricRequest struct {
	ColourMode    string `json:"colour_mode"`
	StructureCode string `json:"structure_code,omitempty"`
	BackrestCode  string `json:"backrest_code,omitempty"`
	SeatCode      string `json:"seat_code,omitempty"`
	HeadrestCode  string `json:"headrest_code,omitempty"`
}

type dimensionsRequest struct {
	SeatDepthIn  int `json:"seat_depth_in"`
	SeatWidthIn  int `json:"seat_width_in"`
	SeatHeightIn int `json:"seat_height_in"`
}

func (r configurationRequest) toDomain() configuration.Configuration {
	cfg := configuration.Configuration{
		Category: configuration.ParseCategory(r.Category),
		Shape:    configuration.ParseShape(r.Shape),
		FoamType: r.FoamType,
		Dimensions: configuration.Dimensions{
			SeatDepthIn:  r.Dimensions.SeatDepthIn,
			SeatWidthIn:  r.Dimensions.SeatWidthIn,
			SeatHeightIn: r.Dimensions.SeatHeightIn,
		},
		DummySeats:     r.DummySeats,
		AccessoryCodes: r.AccessoryCodes,
		DiscountCode:   r.DiscountCode,
	}

	if id, err := snowflake.ParseString(r.ProductID); err == nil {
		cfg.ProductID = id
	}

	for _, section := range r.Sections {
		cfg.Sections = append(cfg.Sections, configuration.Section{
			Position: section.Position,
			Seater:   configuration.ParseSeaterType(section.SeaterType),
			Quantity: section.Quantity,
			WidthIn:  section.WidthIn,
		})
	}

	if r.Lounger != nil {
		cfg.Lounger = &configuration.Lounger{
			Required: r.Lounger.Required,
			Size:     configuration.ParseLoungerSize(r.Lounger.Size),
			Storage:  r.Lounger.Storage == "Yes",
			Quantity: r.Lounger.Quantity,
		}
	}
	if r.Console != nil {
		cfg.Console = &configuration.Console{
			Required:   r.Console.Required,
			Size:       configuration.ParseConsoleSize(r.Console.Size),
			Quantity:   r.Console.Quantity,
			Placements: r.Console.Placements,
		}
	}
	if r.Pillows != nil {
		cfg.Pillows = &configuration.Pillows{
			Required: r.Pillows.Required,
			Type:     configuration.ParsePillowType(r.Pillows.Type),
			Quantity: r.Pillows.Quantity,
		}
	}
	if r.Fabric != nil {
		mode := configuration.SingleColour
		if r.Fabric.ColourMode == string(configuration.DualColour) {
			mode = configuration.DualColour
		}
		cfg.Fabric = &configuration.FabricPlan{
			ColourMode:    mode,
			StructureCode: r.Fabric.StructureCode,
			BackrestCode:  r.Fabric.BackrestCode,
			SeatCode:      r.Fabric.SeatCode,
			HeadrestCode:  r.Fabric.HeadrestCode,
		}
	}

	return cfg
}
