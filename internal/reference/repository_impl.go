package reference

import (
	"context"

	"github.com/shushruth21/estre/internal/reference/domain"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) domain.Repository {
	return &repository{db: db}
}

func (r *repository) ListOptionsByKind(ctx context.Context, kind string) ([]domain.DropdownOption, error) {
	var options []domain.DropdownOption
	err := r.db.WithContext(ctx).
		Raw(`SELECT kind, value, label, sort_order FROM dropdown_options
		     WHERE kind = ? AND is_active = true ORDER BY sort_order, label`, kind).
		Scan(&options).Error
	if err != nil {
		return nil, err
	}
	return options, nil
}

func (r *repository) ListSettingsByCategory(ctx context.Context, category string) ([]domain.CategorySetting, error) {
	var settings []domain.CategorySetting
	err := r.db.WithContext(ctx).
		Raw(`SELECT category, key, value FROM category_settings
		     WHERE category = ? ORDER BY key`, category).
		Scan(&settings).Error
	if err != nil {
		return nil, err
	}
	return settings, nil
}
