package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/qir/domain"
	"github.com/shushruth21/estre/pkg/db/option"
	"github.com/shushruth21/estre/pkg/repository"
)

type repositoryImpl struct {
	store repository.Repository[domain.InspectionReport]
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{
		store: repository.ProvideStore[domain.InspectionReport](db),
	}
}

func (r *repositoryImpl) Create(ctx context.Context, report *domain.InspectionReport) error {
	return r.store.Create(ctx, report)
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.InspectionReport, error) {
	return r.store.FindOne(ctx, &domain.InspectionReport{ID: id})
}

func (r *repositoryImpl) ListByJobCard(ctx context.Context, jobCardNumber string) ([]*domain.InspectionReport, error) {
	return r.store.Find(ctx, &domain.InspectionReport{},
		option.WithCondition("job_card_number = ?", jobCardNumber),
		option.WithOrder("created_at DESC"),
	)
}
