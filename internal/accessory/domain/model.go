package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
)

// Accessory is a purchasable add-on such as a leg style.
type Accessory struct {
	ID        snowflake.ID `json:"id" gorm:"primaryKey"`
	Code      string       `json:"code" gorm:"type:text;not null;uniqueIndex"`
	Name      string       `json:"name" gorm:"type:text"`
	PriceRs   float64      `json:"price_rs" gorm:"not null"`
	Active    bool         `json:"active" gorm:"not null;default:true"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (Accessory) TableName() string { return "accessories" }

type Repository interface {
	FindByCodes(ctx context.Context, codes []string) ([]*Accessory, error)
}

type Service interface {
	// TotalPrice sums prices across matched codes. Unmatched codes
	// contribute nothing; an empty input returns 0 without a store call.
	TotalPrice(ctx context.Context, codes []string) (float64, error)
}
