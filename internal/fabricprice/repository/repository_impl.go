package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/fabricprice/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.FabricPrice]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.FabricPrice](db),
	}
}

func (r *repositoryImpl) FindByCodes(ctx context.Context, codes []string) ([]*domain.FabricPrice, error) {
	return r.store.Find(ctx, &domain.FabricPrice{},
		option.WithCondition("code IN ? AND active = ?", codes, true),
	)
}
