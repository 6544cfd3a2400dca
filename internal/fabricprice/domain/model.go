package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// FabricPrice is the per-meter price of one fabric code.
type FabricPrice struct {
	ID              snowflake.ID `json:"id" gorm:"primaryKey"`
	Code            string       `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name            string       `json:"name" gorm:"type:text"`
	PriceRsPerMeter float64      `json:"price_rs_per_meter" gorm:"not null"`
	Active          bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

func (FabricPrice) TableName() string { return "fabric_prices" }

type Repository interface {
	FindByCodes(ctx context.Context, codes []string) ([]*FabricPrice, error)
}

type Service interface {
	// PriceByCodes batch-resolves unit prices. Codes with no row are
	// absent from the result; callers decide the fallback.
	PriceByCodes(ctx context.Context, codes []string) (map[string]float64, error)
}
