package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// FabricRequirements holds the per-category fabric constants attached to a
// product. Pointer fields distinguish "absent, use the default" from an
// explicit zero.
type FabricRequirements struct {
	FirstSeatMeters      *float64 `json:"first_seat_meters,omitempty"`
	AdditionalSeatMeters *float64 `json:"additional_seat_meters,omitempty"`
	CornerSeatMeters     *float64 `json:"corner_seat_meters,omitempty"`
	BackrestSeatMeters   *float64 `json:"backrest_seat_meters,omitempty"`
	LoungerMeters        *float64 `json:"lounger_meters,omitempty"`
	ConsoleMeters        *float64 `json:"console_meters,omitempty"`
	HeadboardMeters      *float64 `json:"headboard_meters,omitempty"`
	FrameMeters          *float64 `json:"frame_meters,omitempty"`
	StorageMeters        *float64 `json:"storage_meters,omitempty"`
	HeadrestMeters       *float64 `json:"headrest_meters,omitempty"`
}

type Product struct {
	ID                 snowflake.ID                            `json:"id" gorm:"primaryKey"`
	Title              string                                  `json:"title" gorm:"type:text;not null"`
	Slug               string                                  `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Category           string                                  `json:"category" gorm:"type:text;not null;index"`
	NetPriceRs         float64                                 `json:"net_price_rs" gorm:"not null"`
	FabricRequirements datatypes.JSONType[FabricRequirements] `json:"fabric_requirements" gorm:"type:jsonb"`
	Metadata           datatypes.JSONMap                       `json:"metadata,omitempty" gorm:"type:jsonb"`
	Active             bool                                    `json:"active" gorm:"not null;default:true"`
	CreatedAt          time.Time                               `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time                               `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }
