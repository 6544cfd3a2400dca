package domain

import "context"

type Repository interface {
	ListOptionsByKind(ctx context.Context, kind string) ([]DropdownOption, error)
	ListSettingsByCategory(ctx context.Context, category string) ([]CategorySetting, error)
}
