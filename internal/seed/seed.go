// Package seed bootstraps a fresh database with the sofa formula set and
// a small demo catalog so the API is usable immediately after first start.
package seed

import (
	"context"
	"errors"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	accessorydomain "github.com/shushruth21/estre/internal/accessory/domain"
	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	fabricpricedomain "github.com/shushruth21/estre/internal/fabricprice/domain"
	formuladomain "github.com/shushruth21/estre/internal/formula/domain"
	referencedomain "github.com/shushruth21/estre/internal/reference/domain"
)

// EnsureDefaults seeds formulas, demo products, fabric prices, accessories
// and dropdown options. Each block is idempotent: it only writes when the
// table is still empty.
func EnsureDefaults(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFormulas(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureCatalog(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureFabricPrices(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureAccessories(ctx, tx, node); err != nil {
			return err
		}
		return ensureDropdownOptions(ctx, tx)
	})
}

func ensureFormulas(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&formuladomain.PricingFormula{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	values := map[string]float64{
		formuladomain.NameFirstSeat:            100,
		formuladomain.NameAdditionalSeat:       70,
		formuladomain.NameCornerSeat:           100,
		formuladomain.NameBackrestSeat:         20,
		formuladomain.NameLoungerBase:          15000,
		formuladomain.NameLoungerAdditional6In: 1000,
		formuladomain.NameLoungerStorage:       3000,
		formuladomain.NameConsole6In:           4500,
		formuladomain.NameConsole10In:          6500,
		formuladomain.NamePillowSimple:         1200,
		formuladomain.NamePillowDiamondQuilted: 3500,
		formuladomain.NamePillowBeltQuilted:    4000,
		formuladomain.NamePillowTassels:        2500,
		"foam_memory_foam":                     5000,
		"seat_depth_24":                        5,
		"seat_width_24":                        5,
	}

	rows := make([]formuladomain.PricingFormula, 0, len(values))
	for name, value := range values {
		rows = append(rows, formuladomain.PricingFormula{
			ID:       node.Generate(),
			Category: "sofa",
			Name:     name,
			Value:    value,
			Active:   true,
		})
	}
	return tx.WithContext(ctx).Create(&rows).Error
}

func ensureCatalog(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&catalogdomain.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	firstSeat := 6.0
	additional := 3.0
	reclinerFirst := 8.0
	reclinerAdditional := 5.0

	products := []catalogdomain.Product{
		{
			ID:         node.Generate(),
			Title:      "Aria 3 Seater Sofa",
			Slug:       "aria-3-seater-sofa",
			Category:   "SOFA",
			NetPriceRs: 42000,
			FabricRequirements: datatypes.NewJSONType(catalogdomain.FabricRequirements{
				FirstSeatMeters:      &firstSeat,
				AdditionalSeatMeters: &additional,
			}),
			Active: true,
		},
		{
			ID:         node.Generate(),
			Title:      "Vegas Manual Recliner",
			Slug:       "vegas-manual-recliner",
			Category:   "RECLINER",
			NetPriceRs: 36000,
			FabricRequirements: datatypes.NewJSONType(catalogdomain.FabricRequirements{
				FirstSeatMeters:      &reclinerFirst,
				AdditionalSeatMeters: &reclinerAdditional,
			}),
			Metadata: datatypes.JSONMap{
				"fabric_first_recliner_mtrs":  8,
				"fabric_additional_seat_mtrs": 5,
				"fabric_corner_mtrs":          7,
				"fabric_backrest_mtrs":        2,
			},
			Active: true,
		},
	}
	return tx.WithContext(ctx).Create(&products).Error
}

func ensureFabricPrices(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&fabricpricedomain.FabricPrice{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	prices := []fabricpricedomain.FabricPrice{
		{ID: node.Generate(), Code: "EST-VEL-101", Name: "Estre Velvet Moss", PriceRsPerMeter: 650, Active: true},
		{ID: node.Generate(), Code: "EST-LIN-204", Name: "Estre Linen Sand", PriceRsPerMeter: 500, Active: true},
		{ID: node.Generate(), Code: "EST-SUE-307", Name: "Estre Suede Slate", PriceRsPerMeter: 820, Active: true},
	}
	return tx.WithContext(ctx).Create(&prices).Error
}

func ensureAccessories(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&accessorydomain.Accessory{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	accessories := []accessorydomain.Accessory{
		{ID: node.Generate(), Code: "LEG-OAK", Name: "Oak Tapered Legs", PriceRs: 1800, Active: true},
		{ID: node.Generate(), Code: "LEG-STEEL", Name: "Brushed Steel Legs", PriceRs: 2400, Active: true},
	}
	return tx.WithContext(ctx).Create(&accessories).Error
}

func ensureDropdownOptions(ctx context.Context, tx *gorm.DB) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&referencedomain.DropdownOption{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	options := []referencedomain.DropdownOption{
		{Kind: "seater_type", Value: "1-Seater", Label: "1 Seater", SortOrder: 1, IsActive: true},
		{Kind: "seater_type", Value: "2-Seater", Label: "2 Seater", SortOrder: 2, IsActive: true},
		{Kind: "seater_type", Value: "3-Seater", Label: "3 Seater", SortOrder: 3, IsActive: true},
		{Kind: "seater_type", Value: "4-Seater", Label: "4 Seater", SortOrder: 4, IsActive: true},
		{Kind: "seater_type", Value: "Corner", Label: "Corner", SortOrder: 5, IsActive: true},
		{Kind: "seater_type", Value: "Backrest 2-Seater", Label: "Backrest 2 Seater", SortOrder: 6, IsActive: true},
		{Kind: "lounger_size", Value: "5 ft 6 in", Label: "5 ft 6 in", SortOrder: 1, IsActive: true},
		{Kind: "lounger_size", Value: "6 ft", Label: "6 ft", SortOrder: 2, IsActive: true},
		{Kind: "lounger_size", Value: "6 ft 6 in", Label: "6 ft 6 in", SortOrder: 3, IsActive: true},
		{Kind: "lounger_size", Value: "7 ft", Label: "7 ft", SortOrder: 4, IsActive: true},
		{Kind: "console_size", Value: "Console-6 in", Label: "Console 6 in", SortOrder: 1, IsActive: true},
		{Kind: "console_size", Value: "Console-10 in", Label: "Console 10 in", SortOrder: 2, IsActive: true},
		{Kind: "pillow_type", Value: "Simple", Label: "Simple", SortOrder: 1, IsActive: true},
		{Kind: "pillow_type", Value: "Diamond Quilted", Label: "Diamond Quilted", SortOrder: 2, IsActive: true},
		{Kind: "pillow_type", Value: "Belt Quilted", Label: "Belt Quilted", SortOrder: 3, IsActive: true},
		{Kind: "pillow_type", Value: "Tassels", Label: "Tassels", SortOrder: 4, IsActive: true},
		{Kind: "foam_type", Value: "Memory Foam", Label: "Memory Foam", SortOrder: 1, IsActive: true},
		{Kind: "foam_type", Value: "Latex", Label: "Latex", SortOrder: 2, IsActive: true},
	}
	return tx.WithContext(ctx).Create(&options).Error
}
