package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.Product]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.Product](db),
	}
}

func (r *repositoryImpl) Create(ctx context.Context, product *domain.Product) error {
	return r.store.Create(ctx, product)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id snowflake.ID) (*domain.Product, error) {
	return r.store.FindOne(ctx, &domain.Product{ID: id})
}

func (r *repositoryImpl) FindBySlug(ctx context.Context, slug string) (*domain.Product, error) {
	return r.store.FindOne(ctx, &domain.Product{Slug: slug})
}

func (r *repositoryImpl) List(ctx context.Context, filter domain.ListFilter) ([]*domain.Product, error) {
	opts := []option.QueryOption{option.WithOrder("created_at ASC")}
	if filter.Category != "" {
		opts = append(opts, option.WithCondition("category = ?", filter.Category))
	}
	if filter.Active != nil {
		opts = append(opts, option.WithCondition("active = ?", *filter.Active))
	}
	if filter.Limit > 0 {
		opts = append(opts, option.WithLimit(filter.Limit), option.WithOffset(filter.Offset))
	}
	return r.store.Find(ctx, &domain.Product{}, opts...)
}
