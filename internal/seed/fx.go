package seed

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/shushruth21/estre/internal/config"
)

var Module = fx.Module("seed",
	fx.Invoke(func(db *gorm.DB, cfg config.Config) error {
		if !cfg.SeedDemoData {
			return nil
		}
		return EnsureDefaults(db)
	}),
)
