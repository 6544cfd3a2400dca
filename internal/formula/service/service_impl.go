package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shushruth21/estre/internal/cache"
	"github.com/shushruth21/estre/internal/formula/domain"
)

const setTTL = 60 * time.Second

type serviceImpl struct {
	repo  domain.Repository
	cache cache.Cache[string, *domain.Set]
	log   *zap.Logger
}

// NewSetCache is the production cache for resolved formula sets.
func NewSetCache() cache.Cache[string, *domain.Set] {
	return cache.NewTTLCache[string, *domain.Set]()
}

func NewService(repo domain.Repository, c cache.Cache[string, *domain.Set], log *zap.Logger) domain.Service {
	return &serviceImpl{
		repo:  repo,
		cache: c,
		log:   log.Named("formula"),
	}
}

func (s *serviceImpl) ActiveSet(ctx context.Context, category string) (*domain.Set, error) {
	if set, ok := s.cache.Get(category); ok {
		return set, nil
	}

	rows, err := s.repo.ListActive(ctx, category)
	if err != nil {
		s.log.Error("list active formulas",
			zap.String("category", category),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", domain.ErrFetchFailed, err)
	}

	set := domain.NewSet(rows)
	s.cache.Set(category, set, setTTL)
	return set, nil
}
