package domain

import (
	"context"

	"github.com/shushruth21/estre/internal/configuration"
)

// Breakdown is the flat record of charge buckets for one quote.
// Total always equals Subtotal minus DiscountAmount.
type Breakdown struct {
	BaseSeatPrice        float64 `json:"base_seat_price"`
	AdditionalSeatsPrice float64 `json:"additional_seats_price"`
	CornerSeatsPrice     float64 `json:"corner_seats_price"`
	BackrestSeatsPrice   float64 `json:"backrest_seats_price"`
	LoungerPrice         float64 `json:"lounger_price"`
	ConsolePrice         float64 `json:"console_price"`
	PillowsPrice         float64 `json:"pillows_price"`
	FabricCharges        float64 `json:"fabric_charges"`
	FoamUpgrade          float64 `json:"foam_upgrade"`
	DimensionUpgrade     float64 `json:"dimension_upgrade"`
	AccessoriesPrice     float64 `json:"accessories_price"`
	Subtotal             float64 `json:"subtotal"`
	DiscountAmount       float64 `json:"discount_amount"`
	Total                float64 `json:"total"`
}

// Quote is the result of one pricing calculation.
type Quote struct {
	Breakdown Breakdown `json:"breakdown"`
	Total     float64   `json:"total"`
}

type Service interface {
	// Calculate prices one configuration. Validation errors and the two
	// critical fetch failures abort; secondary lookups degrade to zero.
	Calculate(ctx context.Context, cfg *configuration.Configuration) (*Quote, error)
}
