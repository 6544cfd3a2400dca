package domain

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/configuration"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
)

var (
	ErrOrderNotFound  = errors.New("sale order not found")
	ErrOrderNotDraft  = errors.New("sale order is not in draft status")
	ErrNoLineItems    = errors.New("sale order has no line items")
	ErrOrderConfirmed = errors.New("sale order is already confirmed")
)

type OrderStatus string

const (
	StatusDraft      OrderStatus = "draft"
	StatusConfirmed  OrderStatus = "confirmed"
	StatusProduction OrderStatus = "in_production"
	StatusCompleted  OrderStatus = "completed"
	StatusCancelled  OrderStatus = "cancelled"
)

// LineItem is one configured product on a sale order. The quote snapshot
// is written at confirmation and never recomputed afterwards.
type LineItem struct {
	ID            string                                           `json:"id" gorm:"type:text;primaryKey"`
	SaleOrderID   snowflake.ID                                     `json:"sale_order_id" gorm:"index"`
	ProductID     snowflake.ID                                     `json:"product_id"`
	Configuration datatypes.JSONType[configuration.Configuration] `json:"configuration" gorm:"type:jsonb"`
	Quote         datatypes.JSONType[pricingdomain.Breakdown]     `json:"quote" gorm:"type:jsonb"`
	TotalRs       float64                                          `json:"total_rs"`
	JobCardNumber string                                           `json:"job_card_number" gorm:"type:text"`
	CreatedAt     time.Time                                        `json:"created_at"`
	UpdatedAt     time.Time                                        `json:"updated_at"`
}

func (LineItem) TableName() string { return "sale_order_items" }

type SaleOrder struct {
	ID            snowflake.ID `json:"id" gorm:"primaryKey"`
	Number        string       `json:"number" gorm:"type:text;not null;uniqueIndex"`
	CustomerName  string       `json:"customer_name" gorm:"type:text"`
	CustomerPhone string       `json:"customer_phone" gorm:"type:text"`
	Status        OrderStatus  `json:"status" gorm:"type:text;index"`
	TotalRs       float64      `json:"total_rs"`
	Items         []LineItem   `json:"items" gorm:"foreignKey:SaleOrderID"`
	ConfirmedAt   *time.Time   `json:"confirmed_at,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

func (SaleOrder) TableName() string { return "sale_orders" }

type ItemRequest struct {
	Configuration configuration.Configuration `json:"configuration"`
}

type CreateRequest struct {
	CustomerName  string        `json:"customer_name"`
	CustomerPhone string        `json:"customer_phone"`
	Items         []ItemRequest `json:"items"`
}

type Repository interface {
	Create(ctx context.Context, order *SaleOrder) error
	FindByID(ctx context.Context, id snowflake.ID) (*SaleOrder, error)
	List(ctx context.Context, status OrderStatus) ([]*SaleOrder, error)
	Update(ctx context.Context, order *SaleOrder) error
	UpdateItem(ctx context.Context, item *LineItem) error
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*SaleOrder, error)
	Get(ctx context.Context, id snowflake.ID) (*SaleOrder, error)
	List(ctx context.Context, status OrderStatus) ([]*SaleOrder, error)
	// Confirm prices every line item, snapshots the quotes and generates
	// one job card per item.
	Confirm(ctx context.Context, id snowflake.ID) (*SaleOrder, error)
}
