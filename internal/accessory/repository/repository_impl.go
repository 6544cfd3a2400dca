package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/accessory/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.Accessory]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.Accessory](db),
	}
}

func (r *repositoryImpl) FindByCodes(ctx context.Context, codes []string) ([]*domain.Accessory, error) {
	return r.store.Find(ctx, &domain.Accessory{},
		option.WithCondition("code IN ? AND active = ?", codes, true),
	)
}
