package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/formula/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.PricingFormula]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.PricingFormula](db),
	}
}

func (r *repositoryImpl) ListActive(ctx context.Context, category string) ([]*domain.PricingFormula, error) {
	return r.store.Find(ctx, &domain.PricingFormula{},
		option.WithCondition("category = ? AND active = ?", category, true),
	)
}
