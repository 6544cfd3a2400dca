package domain

import (
	"context"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/configuration"
	"github.com/shushruth21/estre/internal/fabric"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
)

// SectionSummary is one seat section on the production document.
type SectionSummary struct {
	Position     string  `json:"position"`
	SeaterType   string  `json:"seater_type"`
	Quantity     int     `json:"quantity"`
	FabricMeters float64 `json:"fabric_meters"`
}

type ConsoleSummary struct {
	Required     bool    `json:"required"`
	Size         string  `json:"size"`
	Quantity     int     `json:"quantity"`
	FabricMeters float64 `json:"fabric_meters"`
}

type DummySeatSummary struct {
	Quantity     int     `json:"quantity"`
	FabricMeters float64 `json:"fabric_meters"`
}

// FabricPlanSummary carries the cutting plan. Dual colour derives a base
// from total meters divided by 1.05 and splits it 75% structure and 30%
// armrest; the overlap is intentional and preserved.
type FabricPlanSummary struct {
	ColourMode      string  `json:"colour_mode"`
	StructureCode   string  `json:"structure_code,omitempty"`
	BackrestCode    string  `json:"backrest_code,omitempty"`
	SeatCode        string  `json:"seat_code,omitempty"`
	HeadrestCode    string  `json:"headrest_code,omitempty"`
	TotalMeters     float64 `json:"total_meters"`
	BaseMeters      float64 `json:"base_meters"`
	StructureMeters float64 `json:"structure_meters,omitempty"`
	ArmrestMeters   float64 `json:"armrest_meters,omitempty"`
}

// GeneratedData is the full payload rendered onto the job card.
type GeneratedData struct {
	JobCardNumber     string                   `json:"job_card_number"`
	Category          string                   `json:"category"`
	Sections          []SectionSummary         `json:"sections"`
	Console           ConsoleSummary           `json:"console"`
	DummySeats        DummySeatSummary         `json:"dummy_seats"`
	FabricPlan        FabricPlanSummary        `json:"fabric_plan"`
	FabricEntries     []fabric.Calculation     `json:"fabric_entries"`
	TotalFabricMeters float64                  `json:"total_fabric_meters"`
	Pricing           pricingdomain.Breakdown  `json:"pricing"`
}

// JobCard is the persisted production document record.
type JobCard struct {
	ID          snowflake.ID                       `json:"id" gorm:"primaryKey"`
	Number      string                             `json:"number" gorm:"type:text;not null;uniqueIndex"`
	SaleOrderID snowflake.ID                       `json:"sale_order_id" gorm:"index"`
	LineItemID  string                             `json:"line_item_id" gorm:"type:text;not null"`
	Category    string                             `json:"category" gorm:"type:text"`
	Data        datatypes.JSONType[GeneratedData] `json:"data" gorm:"type:jsonb"`
	CreatedAt   time.Time                          `json:"created_at"`
	UpdatedAt   time.Time                          `json:"updated_at"`
}

func (JobCard) TableName() string { return "job_cards" }

// GenerateRequest carries everything needed to build one job card.
type GenerateRequest struct {
	SaleOrderID     snowflake.ID
	SaleOrderNumber string
	LineItemID      string
	Configuration   *configuration.Configuration
	Breakdown       pricingdomain.Breakdown
}

type Repository interface {
	Create(ctx context.Context, card *JobCard) error
	Update(ctx context.Context, card *JobCard) error
	FindByNumber(ctx context.Context, number string) (*JobCard, error)
	ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*JobCard, error)
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*JobCard, error)
	Get(ctx context.Context, number string) (*JobCard, error)
	ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*JobCard, error)
}
