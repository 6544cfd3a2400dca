package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/clock"
	"github.com/shushruth21/estre/internal/configuration"
	jobcarddomain "github.com/shushruth21/estre/internal/jobcard/domain"
	jobcardservice "github.com/shushruth21/estre/internal/jobcard/service"
	"github.com/shushruth21/estre/internal/order/domain"
	pricingdomain "github.com/shushruth21/estre/internal/pricing/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

type fakeOrderRepo struct {
	orders map[snowflake.ID]*domain.SaleOrder
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: map[snowflake.ID]*domain.SaleOrder{}}
}

func (f *fakeOrderRepo) Create(ctx context.Context, order *domain.SaleOrder) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id snowflake.ID) (*domain.SaleOrder, error) {
	return f.orders[id], nil
}

func (f *fakeOrderRepo) List(ctx context.Context, status domain.OrderStatus) ([]*domain.SaleOrder, error) {
	var orders []*domain.SaleOrder
	for _, order := range f.orders {
		if status == "" || order.Status == status {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, order *domain.SaleOrder) error {
	f.orders[order.ID] = order
	return nil
}

func (f *fakeOrderRepo) UpdateItem(ctx context.Context, item *domain.LineItem) error {
	return nil
}

type fakePricing struct {
	quote *pricingdomain.Quote
	err   error
}

func (f *fakePricing) Calculate(ctx context.Context, cfg *configuration.Configuration) (*pricingdomain.Quote, error) {
	return f.quote, f.err
}

type fakeJobCards struct {
	generated []jobcarddomain.GenerateRequest
}

func (f *fakeJobCards) Generate(ctx context.Context, req jobcarddomain.GenerateRequest) (*jobcarddomain.JobCard, error) {
	f.generated = append(f.generated, req)
	return &jobcarddomain.JobCard{Number: "SO123-ABCD"}, nil
}

func (f *fakeJobCards) Get(ctx context.Context, number string) (*jobcarddomain.JobCard, error) {
	return nil, nil
}

func (f *fakeJobCards) ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*jobcarddomain.JobCard, error) {
	return nil, nil
}

func newService(t *testing.T, repo domain.Repository, pricing pricingdomain.Service, cards jobcarddomain.Service) domain.Service {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	return New(Params{
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    clock.NewFakeClock(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)),
		Repo:     repo,
		Pricing:  pricing,
		JobCards: cards,
	})
}

func createRequest() domain.CreateRequest {
	return domain.CreateRequest{
		CustomerName: "Asha",
		Items: []domain.ItemRequest{{
			Configuration: configuration.Configuration{
				ProductID: 1,
				Category:  configuration.CategorySofa,
				Fabric:    &configuration.FabricPlan{ColourMode: configuration.SingleColour},
			},
		}},
	}
}

func TestCreateDraftOrder(t *testing.T) {
	repo := newFakeOrderRepo()
	svc := newService(t, repo, &fakePricing{}, &fakeJobCards{})

	order, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.StatusDraft, order.Status)
	assert.NotEmpty(t, order.Number)
	require.Len(t, order.Items, 1)
	assert.NotEmpty(t, order.Items[0].ID)
}

func TestCreateRejectsEmptyOrder(t *testing.T) {
	svc := newService(t, newFakeOrderRepo(), &fakePricing{}, &fakeJobCards{})

	_, err := svc.Create(context.Background(), domain.CreateRequest{})
	assert.ErrorIs(t, err, domain.ErrNoLineItems)
}

func TestConfirmSnapshotsQuoteAndGeneratesJobCard(t *testing.T) {
	repo := newFakeOrderRepo()
	cards := &fakeJobCards{}
	quote := &pricingdomain.Quote{
		Breakdown: pricingdomain.Breakdown{Subtotal: 25000, Total: 25000},
		Total:     25000,
	}
	svc := newService(t, repo, &fakePricing{quote: quote}, cards)

	order, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	confirmed, err := svc.Confirm(context.Background(), order.ID)
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
	assert.InDelta(t, 25000, confirmed.TotalRs, 1e-9)
	require.Len(t, cards.generated, 1)
	assert.Equal(t, confirmed.Number, cards.generated[0].SaleOrderNumber)
	assert.Equal(t, "SO123-ABCD", confirmed.Items[0].JobCardNumber)
}

func TestConfirmTwiceFails(t *testing.T) {
	repo := newFakeOrderRepo()
	quote := &pricingdomain.Quote{Total: 1000}
	svc := newService(t, repo, &fakePricing{quote: quote}, &fakeJobCards{})

	order, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), order.ID)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), order.ID)
	assert.ErrorIs(t, err, domain.ErrOrderConfirmed)
}

func TestConfirmAbortsOnPricingFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	cards := &fakeJobCards{}
	svc := newService(t, repo, &fakePricing{err: configuration.ErrFabricRequired}, cards)

	order, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), order.ID)
	assert.Error(t, err)
	assert.Empty(t, cards.generated)

	stored, err := svc.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
}

// flakyPricing fails on scripted call numbers and succeeds otherwise.
type flakyPricing struct {
	calls  int
	failOn map[int]error
	quote  *pricingdomain.Quote
}

func (f *flakyPricing) Calculate(ctx context.Context, cfg *configuration.Configuration) (*pricingdomain.Quote, error) {
	f.calls++
	if err := f.failOn[f.calls]; err != nil {
		return nil, err
	}
	return f.quote, nil
}

// uniqueCardRepo enforces the job card number unique index like the real
// table does.
type uniqueCardRepo struct {
	cards map[string]*jobcarddomain.JobCard
}

func (f *uniqueCardRepo) Create(ctx context.Context, card *jobcarddomain.JobCard) error {
	if _, ok := f.cards[card.Number]; ok {
		return errors.New("UNIQUE constraint failed: job_cards.number")
	}
	f.cards[card.Number] = card
	return nil
}

func (f *uniqueCardRepo) Update(ctx context.Context, card *jobcarddomain.JobCard) error {
	f.cards[card.Number] = card
	return nil
}

func (f *uniqueCardRepo) FindByNumber(ctx context.Context, number string) (*jobcarddomain.JobCard, error) {
	return f.cards[number], nil
}

func (f *uniqueCardRepo) ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*jobcarddomain.JobCard, error) {
	return nil, nil
}

type unavailableCatalog struct{}

func (unavailableCatalog) Create(ctx context.Context, req catalogdomain.CreateRequest) (*catalogdomain.Product, error) {
	return nil, errors.New("unavailable")
}

func (unavailableCatalog) Get(ctx context.Context, id string) (*catalogdomain.Product, error) {
	return nil, errors.New("unavailable")
}

func (unavailableCatalog) GetBySlug(ctx context.Context, slug string) (*catalogdomain.Product, error) {
	return nil, errors.New("unavailable")
}

func (unavailableCatalog) List(ctx context.Context, filter catalogdomain.ListFilter) ([]*catalogdomain.Product, error) {
	return nil, nil
}

func TestConfirmRetriesAfterTransientPricingFailure(t *testing.T) {
	repo := newFakeOrderRepo()
	cardRepo := &uniqueCardRepo{cards: map[string]*jobcarddomain.JobCard{}}

	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	cardSvc := jobcardservice.New(jobcardservice.Params{
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    cardRepo,
		Catalog: unavailableCatalog{},
		Monitor: telemetry.NewMonitor(16, prometheus.NewRegistry()),
	})

	quote := &pricingdomain.Quote{
		Breakdown: pricingdomain.Breakdown{Subtotal: 25000, Total: 25000},
		Total:     25000,
	}
	// The second line item's pricing fails once, then recovers.
	pricing := &flakyPricing{failOn: map[int]error{2: errors.New("connection reset")}, quote: quote}
	svc := newService(t, repo, pricing, cardSvc)

	req := createRequest()
	req.Items = append(req.Items, domain.ItemRequest{
		Configuration: configuration.Configuration{
			ProductID: 2,
			Category:  configuration.CategorySofa,
			Fabric:    &configuration.FabricPlan{ColourMode: configuration.SingleColour},
		},
	})
	order, err := svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Confirm(context.Background(), order.ID)
	require.Error(t, err)

	stored, err := svc.Get(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusDraft, stored.Status)
	assert.Len(t, cardRepo.cards, 1)

	confirmed, err := svc.Confirm(context.Background(), order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, confirmed.Status)
	assert.Len(t, cardRepo.cards, 2)
	for _, item := range confirmed.Items {
		assert.NotEmpty(t, item.JobCardNumber)
	}
}

func TestGetUnknownOrder(t *testing.T) {
	svc := newService(t, newFakeOrderRepo(), &fakePricing{}, &fakeJobCards{})

	_, err := svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}
