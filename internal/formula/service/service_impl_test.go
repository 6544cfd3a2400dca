package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shushruth21/estre/internal/cache"
	"github.com/shushruth21/estre/internal/formula/domain"
)

func noopCache() cache.Cache[string, *domain.Set] {
	return cache.NoopCache[string, *domain.Set]{}
}

type fakeRepo struct {
	rows  []*domain.PricingFormula
	err   error
	calls int
}

func (f *fakeRepo) ListActive(ctx context.Context, category string) ([]*domain.PricingFormula, error) {
	f.calls++
	return f.rows, f.err
}

func TestActiveSetAppliesDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{}, noopCache(), zap.NewNop())

	set, err := svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)

	assert.Equal(t, 100.0, set.FirstSeatPct)
	assert.Equal(t, 70.0, set.AdditionalSeatPct)
	assert.Equal(t, 20.0, set.BackrestSeatPct)
	assert.Equal(t, 15000.0, set.LoungerBase)
	assert.Equal(t, 6500.0, set.Console10In)
	assert.Equal(t, 1200.0, set.PillowSimple)
}

func TestActiveSetStoredRowsOverrideDefaults(t *testing.T) {
	repo := &fakeRepo{rows: []*domain.PricingFormula{
		{Category: "sofa", Name: domain.NameAdditionalSeat, Value: 65},
		{Category: "sofa", Name: "foam_memory_foam", Value: 5000},
	}}
	svc := NewService(repo, noopCache(), zap.NewNop())

	set, err := svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)

	assert.Equal(t, 65.0, set.AdditionalSeatPct)
	assert.Equal(t, 100.0, set.FirstSeatPct)

	foam, ok := set.Lookup("foam_memory_foam")
	assert.True(t, ok)
	assert.Equal(t, 5000.0, foam)

	_, ok = set.Lookup("foam_latex")
	assert.False(t, ok)
}

func TestActiveSetCachesPerCategory(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, NewSetCache(), zap.NewNop())

	_, err := svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)
	_, err = svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
}

func TestActiveSetNoopCacheHitsStoreEveryCall(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, noopCache(), zap.NewNop())

	_, err := svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)
	_, err = svc.ActiveSet(context.Background(), "sofa")
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
}

func TestActiveSetFetchFailureIsFatal(t *testing.T) {
	repo := &fakeRepo{err: errors.New("connection refused")}
	svc := NewService(repo, noopCache(), zap.NewNop())

	_, err := svc.ActiveSet(context.Background(), "sofa")
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
