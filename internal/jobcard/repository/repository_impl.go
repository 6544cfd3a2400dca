package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/jobcard/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.JobCard]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.JobCard](db),
	}
}

func (r *repositoryImpl) Create(ctx context.Context, card *domain.JobCard) error {
	return r.store.Create(ctx, card)
}

func (r *repositoryImpl) Update(ctx context.Context, card *domain.JobCard) error {
	return r.store.Update(ctx, card.ID.String(), card)
}

func (r *repositoryImpl) FindByNumber(ctx context.Context, number string) (*domain.JobCard, error) {
	return r.store.FindOne(ctx, &domain.JobCard{Number: number})
}

func (r *repositoryImpl) ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*domain.JobCard, error) {
	return r.store.Find(ctx, &domain.JobCard{},
		option.WithCondition("sale_order_id = ?", saleOrderID),
		option.WithOrder("created_at ASC"),
	)
}
