package migration

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	accessorydomain "github.com/shushruth21/estre/internal/accessory/domain"
	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/config"
	fabricpricedomain "github.com/shushruth21/estre/internal/fabricprice/domain"
	formuladomain "github.com/shushruth21/estre/internal/formula/domain"
	jobcarddomain "github.com/shushruth21/estre/internal/jobcard/domain"
	orderdomain "github.com/shushruth21/estre/internal/order/domain"
	qirdomain "github.com/shushruth21/estre/internal/qir/domain"
	referencedomain "github.com/shushruth21/estre/internal/reference/domain"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if !cfg.RunMigration {
			return nil
		}

		// The versioned SQL migrations target postgres. Other dialects
		// (sqlite in local development and tests) get the schema from
		// the models directly.
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			return RunMigrations(sqlDB)
		}

		return conn.AutoMigrate(
			&formuladomain.PricingFormula{},
			&catalogdomain.Product{},
			&fabricpricedomain.FabricPrice{},
			&accessorydomain.Accessory{},
			&jobcarddomain.JobCard{},
			&qirdomain.InspectionReport{},
			&orderdomain.SaleOrder{},
			&orderdomain.LineItem{},
			&referencedomain.DropdownOption{},
			&referencedomain.CategorySetting{},
		)
	}),
)
