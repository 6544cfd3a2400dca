package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
	formuladomain "github.com/shushruth21/estre/internal/formula/domain"
	"github.com/shushruth21/estre/internal/pricing/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

type fakeFormulas struct {
	rows []*formuladomain.PricingFormula
	err  error
}

func (f *fakeFormulas) ActiveSet(ctx context.Context, category string) (*formuladomain.Set, error) {
	if f.err != nil {
		return nil, f.err
	}
	return formuladomain.NewSet(f.rows), nil
}

type fakeCatalog struct {
	product *catalogdomain.Product
	err     error
}

func (f *fakeCatalog) Create(ctx context.Context, req catalogdomain.CreateRequest) (*catalogdomain.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*catalogdomain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.product, nil
}

func (f *fakeCatalog) GetBySlug(ctx context.Context, slug string) (*catalogdomain.Product, error) {
	return f.Get(ctx, slug)
}

func (f *fakeCatalog) List(ctx context.Context, filter catalogdomain.ListFilter) ([]*catalogdomain.Product, error) {
	return nil, nil
}

type fakeFabricPrices struct {
	prices map[string]float64
	err    error
	calls  int
}

func (f *fakeFabricPrices) PriceByCodes(ctx context.Context, codes []string) (map[string]float64, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.prices, nil
}

type fakeAccessories struct {
	total float64
	err   error
}

func (f *fakeAccessories) TotalPrice(ctx context.Context, codes []string) (float64, error) {
	return f.total, f.err
}

func newService(t *testing.T, formulas *fakeFormulas, catalog *fakeCatalog, fabrics *fakeFabricPrices, accessories *fakeAccessories) domain.Service {
	t.Helper()
	return New(Params{
		Log:         zap.NewNop(),
		Formulas:    formulas,
		Catalog:     catalog,
		FabricPrice: fabrics,
		Accessory:   accessories,
		Monitor:     telemetry.NewMonitor(16, prometheus.NewRegistry()),
	})
}

func product(basePrice float64, reqs catalogdomain.FabricRequirements) *catalogdomain.Product {
	return &catalogdomain.Product{
		ID:                 1,
		Title:              "Aria Sofa",
		Category:           string(configuration.CategorySofa),
		NetPriceRs:         basePrice,
		FabricRequirements: datatypes.NewJSONType(reqs),
	}
}

func cornerOnlyConfig() *configuration.Configuration {
	return &configuration.Configuration{
		ProductID: 1,
		Category:  configuration.CategorySofa,
		Sections: []configuration.Section{
			{Position: "front", Seater: configuration.ParseSeaterType("Corner"), Quantity: 1},
		},
		Fabric: &configuration.FabricPlan{ColourMode: configuration.SingleColour},
	}
}

func TestCornerOnlyQuote(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	quote, err := svc.Calculate(context.Background(), cornerOnlyConfig())
	require.NoError(t, err)

	assert.InDelta(t, 10000, quote.Breakdown.BaseSeatPrice, 1e-9)
	assert.InDelta(t, 10000, quote.Breakdown.CornerSeatsPrice, 1e-9)
	assert.Zero(t, quote.Breakdown.AdditionalSeatsPrice)
	assert.InDelta(t, 20000, quote.Total, 1e-9)
}

func TestFabricChargesUseStructurePrice(t *testing.T) {
	first := 6.0
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{FirstSeatMeters: &first})},
		&fakeFabricPrices{prices: map[string]float64{"FAB-1": 500}},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Fabric.StructureCode = "FAB-1"

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	assert.InDelta(t, 3000, quote.Breakdown.FabricCharges, 1e-9)
	assert.InDelta(t, 23000, quote.Total, 1e-9)
}

func TestFormulaFetchFailureIsFatal(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{err: formuladomain.ErrFetchFailed},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	quote, err := svc.Calculate(context.Background(), cornerOnlyConfig())
	assert.ErrorIs(t, err, formuladomain.ErrFetchFailed)
	assert.Nil(t, quote)
}

func TestProductFetchFailureIsFatal(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{err: catalogdomain.ErrProductNotFound},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	_, err := svc.Calculate(context.Background(), cornerOnlyConfig())
	assert.ErrorIs(t, err, catalogdomain.ErrProductNotFound)
}

func TestLoungerSizeTieBreak(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Lounger = &configuration.Lounger{
		Required: true,
		Size:     configuration.ParseLoungerSize("6 ft 6 in"),
		Storage:  true,
		Quantity: 1,
	}

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	// 15000 base + 1000 x 3 upgrade steps + 3000 storage.
	assert.InDelta(t, 21000, quote.Breakdown.LoungerPrice, 1e-9)
}

func TestValidationRunsBeforeAnyFetch(t *testing.T) {
	fabrics := &fakeFabricPrices{}
	svc := newService(t,
		&fakeFormulas{err: errors.New("must not be reached")},
		&fakeCatalog{},
		fabrics,
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Dimensions.SeatDepthIn = -2

	_, err := svc.Calculate(context.Background(), cfg)
	assert.ErrorIs(t, err, configuration.ErrInvalidDimensions)
	assert.Zero(t, fabrics.calls)
}

func TestDegradedFabricLookupStillQuotes(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{err: errors.New("timeout")},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Fabric.StructureCode = "FAB-1"

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	assert.Zero(t, quote.Breakdown.FabricCharges)
	assert.InDelta(t, 20000, quote.Total, 1e-9)
}

func TestDimensionUpgradeCompoundsOnRunningTotal(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{rows: []*formuladomain.PricingFormula{
			{Name: "seat_depth_24", Value: 10},
		}},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Dimensions.SeatDepthIn = 24

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	// 10% of the 20000 accumulated so far, not of the base price.
	assert.InDelta(t, 2000, quote.Breakdown.DimensionUpgrade, 1e-9)
	assert.InDelta(t, 22000, quote.Total, 1e-9)
}

func TestDiscountInvariant(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{rows: []*formuladomain.PricingFormula{
			{Name: "discount_summer10", Value: 10},
		}},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.DiscountCode = "SUMMER10"

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	assert.InDelta(t, 2000, quote.Breakdown.DiscountAmount, 1e-9)
	assert.InDelta(t, quote.Breakdown.Subtotal-quote.Breakdown.DiscountAmount, quote.Breakdown.Total, 1e-9)
	assert.InDelta(t, 18000, quote.Total, 1e-9)
}

func TestFractionalChargesRoundToWholeRupees(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{rows: []*formuladomain.PricingFormula{
			{Name: "discount_festive", Value: 3.33},
		}},
		&fakeCatalog{product: product(10000, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{prices: map[string]float64{"FAB-1": 333.33}},
		&fakeAccessories{},
	)

	cfg := cornerOnlyConfig()
	cfg.Fabric.StructureCode = "FAB-1"
	cfg.DiscountCode = "FESTIVE"

	quote, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	// 333.33/m over 6m is 1999.98, billed as 2000 whole rupees.
	assert.Equal(t, 2000.0, quote.Breakdown.FabricCharges)
	// 3.33% of the 22000 subtotal is 732.6, rounded up to 733.
	assert.Equal(t, 22000.0, quote.Breakdown.Subtotal)
	assert.Equal(t, 733.0, quote.Breakdown.DiscountAmount)
	assert.Equal(t, 21267.0, quote.Total)

	for name, amount := range map[string]float64{
		"base":     quote.Breakdown.BaseSeatPrice,
		"corner":   quote.Breakdown.CornerSeatsPrice,
		"fabric":   quote.Breakdown.FabricCharges,
		"subtotal": quote.Breakdown.Subtotal,
		"discount": quote.Breakdown.DiscountAmount,
		"total":    quote.Total,
	} {
		assert.Equal(t, math.Trunc(amount), amount, "bucket %s is not whole rupees", name)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	svc := newService(t,
		&fakeFormulas{},
		&fakeCatalog{product: product(12500, catalogdomain.FabricRequirements{})},
		&fakeFabricPrices{prices: map[string]float64{"FAB-1": 750}},
		&fakeAccessories{total: 900},
	)

	cfg := &configuration.Configuration{
		ProductID: 1,
		Category:  configuration.CategorySofa,
		Sections: []configuration.Section{
			{Position: "front", Seater: configuration.ParseSeaterType("3-Seater"), Quantity: 1},
			{Position: "left", Seater: configuration.ParseSeaterType("Corner"), Quantity: 1},
		},
		Lounger:        &configuration.Lounger{Required: true, Size: configuration.LoungerSize6Ft, Quantity: 1},
		Pillows:        &configuration.Pillows{Required: true, Type: configuration.PillowTassels, Quantity: 4},
		Fabric:         &configuration.FabricPlan{ColourMode: configuration.SingleColour, StructureCode: "FAB-1"},
		AccessoryCodes: []string{"LEG-OAK"},
	}

	first, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)
	second, err := svc.Calculate(context.Background(), cfg)
	require.NoError(t, err)

	assert.Equal(t, first.Breakdown, second.Breakdown)
}
