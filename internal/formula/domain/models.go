package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
)

// ErrFetchFailed is returned when the active formula set cannot be loaded.
// Pricing treats this as fatal; there is no partial computation.
var ErrFetchFailed = errors.New("failed to fetch pricing formulas")

// PricingFormula is one named pricing constant, scoped to a category.
type PricingFormula struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Category  string       `json:"category" gorm:"index:idx_formula_category_name,unique"`
	Name      string       `json:"name" gorm:"index:idx_formula_category_name,unique"`
	Value     float64      `json:"value"`
	Active    bool         `json:"active" gorm:"default:true"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (PricingFormula) TableName() string {
	return "pricing_formulas"
}

type Repository interface {
	ListActive(ctx context.Context, category string) ([]*PricingFormula, error)
}

type Service interface {
	// ActiveSet resolves the active formulas for a category into a typed
	// set with defaults already applied.
	ActiveSet(ctx context.Context, category string) (*Set, error)
}
