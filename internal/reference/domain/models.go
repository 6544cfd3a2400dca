package domain

import "time"

// DropdownOption feeds the configuration UI: seater types, lounger sizes,
// console sizes, pillow styles, foam types and so on, grouped by kind.
type DropdownOption struct {
	Kind      string    `json:"kind" gorm:"type:text;primaryKey;column:kind"`
	Value     string    `json:"value" gorm:"type:text;primaryKey;column:value"`
	Label     string    `json:"label" gorm:"type:text;not null"`
	SortOrder int       `json:"sort_order" gorm:"not null;default:0"`
	IsActive  bool      `json:"is_active,omitempty" gorm:"not null;default:true"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (DropdownOption) TableName() string { return "dropdown_options" }

// CategorySetting is a read-only key-value setting scoped to a product
// category, such as which optional features the configurator shows.
type CategorySetting struct {
	Category  string    `json:"category" gorm:"type:text;primaryKey;column:category"`
	Key       string    `json:"key" gorm:"type:text;primaryKey;column:key"`
	Value     string    `json:"value" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at,omitempty" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (CategorySetting) TableName() string { return "category_settings" }
