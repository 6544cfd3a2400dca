package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
	"github.com/shushruth21/estre/internal/jobcard/domain"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

type fakeRepo struct {
	created *domain.JobCard
	creates int
	updates int
}

func (f *fakeRepo) Create(ctx context.Context, card *domain.JobCard) error {
	if f.created != nil && f.created.Number == card.Number {
		return errors.New("UNIQUE constraint failed: job_cards.number")
	}
	f.created = card
	f.creates++
	return nil
}

func (f *fakeRepo) Update(ctx context.Context, card *domain.JobCard) error {
	f.created = card
	f.updates++
	return nil
}

func (f *fakeRepo) FindByNumber(ctx context.Context, number string) (*domain.JobCard, error) {
	if f.created != nil && f.created.Number == number {
		return f.created, nil
	}
	return nil, nil
}

func (f *fakeRepo) ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*domain.JobCard, error) {
	return nil, nil
}

type fakeCatalog struct {
	product *catalogdomain.Product
	err     error
}

func (f *fakeCatalog) Create(ctx context.Context, req catalogdomain.CreateRequest) (*catalogdomain.Product, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeCatalog) Get(ctx context.Context, id string) (*catalogdomain.Product, error) {
	return f.product, f.err
}

func (f *fakeCatalog) GetBySlug(ctx context.Context, slug string) (*catalogdomain.Product, error) {
	return f.product, f.err
}

func (f *fakeCatalog) List(ctx context.Context, filter catalogdomain.ListFilter) ([]*catalogdomain.Product, error) {
	return nil, nil
}

func newService(t *testing.T, repo *fakeRepo, catalog *fakeCatalog) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repo,
		Catalog: catalog,
		Monitor: telemetry.NewMonitor(16, prometheus.NewRegistry()),
	})
}

func sofaRequest() domain.GenerateRequest {
	return domain.GenerateRequest{
		SaleOrderID:     7,
		SaleOrderNumber: "SO-2024/0042",
		LineItemID:      "li_8f3ab1cd",
		Configuration: &configuration.Configuration{
			ProductID: 1,
			Category:  configuration.CategorySofa,
			Sections: []configuration.Section{
				{Position: "front", Seater: configuration.ParseSeaterType("3-Seater"), Quantity: 1},
			},
			Fabric: &configuration.FabricPlan{
				ColourMode:    configuration.SingleColour,
				StructureCode: "FAB-1",
			},
		},
		Breakdown: pricingdomain.Breakdown{Subtotal: 30000, Total: 30000},
	}
}

func TestDeriveNumber(t *testing.T) {
	assert.Equal(t, "SO20240042-B1CD", DeriveNumber("SO-2024/0042", "li_8f3ab1cd"))
	assert.Equal(t, "SO1-00AB", DeriveNumber("SO-1", "ab"))
	assert.Equal(t, "x-1234", DeriveNumber("x", "1234"))
}

func TestGenerateSofaJobCard(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(t, repo, &fakeCatalog{product: &catalogdomain.Product{
		ID:         1,
		Category:   string(configuration.CategorySofa),
		NetPriceRs: 30000,
	}})

	card, err := svc.Generate(context.Background(), sofaRequest())
	require.NoError(t, err)

	assert.Equal(t, "SO20240042-B1CD", card.Number)
	assert.NotNil(t, repo.created)

	data := card.Data.Data()
	if assert.Len(t, data.Sections, 1) {
		// 6.0 first + 3.0 x 2 additional.
		assert.InDelta(t, 12.0, data.Sections[0].FabricMeters, 1e-9)
	}
	assert.InDelta(t, 13.2, data.TotalFabricMeters, 1e-9)
	assert.Equal(t, string(configuration.SingleColour), data.FabricPlan.ColourMode)
	assert.InDelta(t, 6.0, data.FabricPlan.BaseMeters, 1e-9)
}

func TestGenerateIsIdempotentPerLineItem(t *testing.T) {
	repo := &fakeRepo{}
	svc := newService(t, repo, &fakeCatalog{product: &catalogdomain.Product{
		ID:         1,
		Category:   string(configuration.CategorySofa),
		NetPriceRs: 30000,
	}})

	first, err := svc.Generate(context.Background(), sofaRequest())
	require.NoError(t, err)

	again, err := svc.Generate(context.Background(), sofaRequest())
	require.NoError(t, err)

	assert.Equal(t, first.Number, again.Number)
	assert.Equal(t, first.ID, again.ID)
	assert.Equal(t, 1, repo.creates)
	assert.Equal(t, 1, repo.updates)
}

func TestDualColourSplit(t *testing.T) {
	svc := newService(t, &fakeRepo{}, &fakeCatalog{product: &catalogdomain.Product{ID: 1}})

	req := sofaRequest()
	req.Configuration.Fabric.ColourMode = configuration.DualColour
	req.Configuration.Fabric.SeatCode = "FAB-2"

	card, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	data := card.Data.Data()
	base := data.TotalFabricMeters / 1.05
	assert.InDelta(t, base, data.FabricPlan.BaseMeters, 1e-9)
	assert.InDelta(t, base*0.75, data.FabricPlan.StructureMeters, 1e-9)
	assert.InDelta(t, base*0.30, data.FabricPlan.ArmrestMeters, 1e-9)
}

func TestReclinerUsesMetadataMeters(t *testing.T) {
	svc := newService(t, &fakeRepo{}, &fakeCatalog{product: &catalogdomain.Product{
		ID:       1,
		Category: string(configuration.CategoryRecliner),
		Metadata: datatypes.JSONMap{
			"fabric_first_recliner_mtrs":  10.0,
			"fabric_additional_seat_mtrs": 6.0,
		},
	}})

	req := sofaRequest()
	req.Configuration.Category = configuration.CategoryRecliner
	req.Configuration.Sections = []configuration.Section{
		{Position: "front", Seater: configuration.ParseSeaterType("2-Seater"), Quantity: 1},
	}

	card, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	data := card.Data.Data()
	if assert.Len(t, data.Sections, 1) {
		// 10 first + 6 additional from metadata, not the 8/5 defaults.
		assert.InDelta(t, 16.0, data.Sections[0].FabricMeters, 1e-9)
	}
}

func TestProductFetchFailureDegrades(t *testing.T) {
	svc := newService(t, &fakeRepo{}, &fakeCatalog{err: errors.New("timeout")})

	req := sofaRequest()
	req.Configuration.Category = configuration.CategoryRecliner
	req.Configuration.Sections = []configuration.Section{
		{Position: "front", Seater: configuration.ParseSeaterType("2-Seater"), Quantity: 1},
	}

	card, err := svc.Generate(context.Background(), req)
	require.NoError(t, err)

	data := card.Data.Data()
	if assert.Len(t, data.Sections, 1) {
		// Fallback recliner defaults 8 + 5.
		assert.InDelta(t, 13.0, data.Sections[0].FabricMeters, 1e-9)
	}
}

func TestGenerateRequiresOrderIdentifiers(t *testing.T) {
	svc := newService(t, &fakeRepo{}, &fakeCatalog{})

	_, err := svc.Generate(context.Background(), domain.GenerateRequest{})
	assert.ErrorIs(t, err, ErrConfigurationRequired)

	req := sofaRequest()
	req.LineItemID = ""
	_, err = svc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, ErrOrderRequired)
}
