package service

import (
	"context"
	"fmt"

	"github.com/bwmarrin/snowflake"
	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/clock"
	jobcarddomain "github.com/shushruth21/estre/internal/jobcard/domain"
	"github.com/shushruth21/estre/internal/order/domain"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
)

type Params struct {
	fx.In

	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Pricing  pricingdomain.Service
	JobCards jobcarddomain.Service
}

type Service struct {
	log      *zap.Logger
	genID    *snowflake.Node
	clock    clock.Clock
	repo     domain.Repository
	pricing  pricingdomain.Service
	jobCards jobcarddomain.Service
}

func New(p Params) domain.Service {
	return &Service{
		log:      p.Log.Named("order.service"),
		genID:    p.GenID,
		clock:    p.Clock,
		repo:     p.Repo,
		pricing:  p.Pricing,
		jobCards: p.JobCards,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.SaleOrder, error) {
	if len(req.Items) == 0 {
		return nil, domain.ErrNoLineItems
	}

	id := s.genID.Generate()
	order := &domain.SaleOrder{
		ID:            id,
		Number:        fmt.Sprintf("SO-%s", id.String()),
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Status:        domain.StatusDraft,
	}
	for _, item := range req.Items {
		order.Items = append(order.Items, domain.LineItem{
			ID:            uuid.NewString(),
			SaleOrderID:   order.ID,
			ProductID:     item.Configuration.ProductID,
			Configuration: datatypes.NewJSONType(item.Configuration),
		})
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.log.Error("create sale order", zap.Error(err))
		return nil, err
	}
	return order, nil
}

func (s *Service) Get(ctx context.Context, id snowflake.ID) (*domain.SaleOrder, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (s *Service) List(ctx context.Context, status domain.OrderStatus) ([]*domain.SaleOrder, error) {
	return s.repo.List(ctx, status)
}

// Confirm walks the line items in order: price, snapshot, job card. A
// pricing failure on any item aborts the confirmation so no half-priced
// order is ever confirmed.
func (s *Service) Confirm(ctx context.Context, id snowflake.ID) (*domain.SaleOrder, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.Status == domain.StatusConfirmed {
		return nil, domain.ErrOrderConfirmed
	}
	if order.Status != domain.StatusDraft {
		return nil, domain.ErrOrderNotDraft
	}
	if len(order.Items) == 0 {
		return nil, domain.ErrNoLineItems
	}

	var total float64
	for i := range order.Items {
		item := &order.Items[i]
		cfg := item.Configuration.Data()

		quote, err := s.pricing.Calculate(ctx, &cfg)
		if err != nil {
			s.log.Error("price line item",
				zap.String("line_item_id", item.ID),
				zap.Error(err),
			)
			return nil, err
		}

		card, err := s.jobCards.Generate(ctx, jobcarddomain.GenerateRequest{
			SaleOrderID:     order.ID,
			SaleOrderNumber: order.Number,
			LineItemID:      item.ID,
			Configuration:   &cfg,
			Breakdown:       quote.Breakdown,
		})
		if err != nil {
			return nil, err
		}

		item.Quote = datatypes.NewJSONType(quote.Breakdown)
		item.TotalRs = quote.Total
		item.JobCardNumber = card.Number
		total += quote.Total

		if err := s.repo.UpdateItem(ctx, item); err != nil {
			return nil, err
		}
	}

	now := s.clock.Now()
	order.Status = domain.StatusConfirmed
	order.TotalRs = total
	order.ConfirmedAt = &now

	if err := s.repo.Update(ctx, order); err != nil {
		s.log.Error("confirm sale order", zap.String("number", order.Number), zap.Error(err))
		return nil, err
	}
	return order, nil
}
