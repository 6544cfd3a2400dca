package repository

import (
	"context"

	"github.com/bwmarrin/snowflake"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/order/domain"
)

type repositoryImpl struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) Create(ctx context.Context, order *domain.SaleOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *repositoryImpl) FindByID(ctx context.Context, id snowflake.ID) (*domain.SaleOrder, error) {
	var order domain.SaleOrder
	err := r.db.WithContext(ctx).
		Preload("Items").
		First(&order, "id = ?", id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *repositoryImpl) List(ctx context.Context, status domain.OrderStatus) ([]*domain.SaleOrder, error) {
	stmt := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		stmt = stmt.Where("status = ?", status)
	}

	var orders []*domain.SaleOrder
	if err := stmt.Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *repositoryImpl) Update(ctx context.Context, order *domain.SaleOrder) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *repositoryImpl) UpdateItem(ctx context.Context, item *domain.LineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}
