package domain

import (
	"context"
	"errors"
)

// ErrProductNotFound covers both missing rows and failed product fetches.
// Pricing treats it as fatal.
var ErrProductNotFound = errors.New("product not found")

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Product, error)
	Get(ctx context.Context, id string) (*Product, error)
	GetBySlug(ctx context.Context, slug string) (*Product, error)
	List(ctx context.Context, filter ListFilter) ([]*Product, error)
}

type ListFilter struct {
	Category string
	Active   *bool
	Limit    int
	Offset   int
}

type CreateRequest struct {
	Title              string             `json:"title"`
	Category           string             `json:"category"`
	NetPriceRs         float64            `json:"net_price_rs"`
	FabricRequirements FabricRequirements `json:"fabric_requirements"`
	Metadata           map[string]any     `json:"metadata"`
	Active             *bool              `json:"active"`
}
