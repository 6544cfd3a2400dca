package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shushruth21/estre/internal/fabricprice/domain"
)

type serviceImpl struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewService(repo domain.Repository, log *zap.Logger) domain.Service {
	return &serviceImpl{repo: repo, log: log.Named("fabricprice")}
}

func (s *serviceImpl) PriceByCodes(ctx context.Context, codes []string) (map[string]float64, error) {
	filtered := make([]string, 0, len(codes))
	for _, code := range codes {
		if code != "" {
			filtered = append(filtered, code)
		}
	}
	if len(filtered) == 0 {
		return map[string]float64{}, nil
	}

	rows, err := s.repo.FindByCodes(ctx, filtered)
	if err != nil {
		s.log.Error("fetch fabric prices", zap.Strings("codes", filtered), zap.Error(err))
		return nil, err
	}

	prices := make(map[string]float64, len(rows))
	for _, row := range rows {
		prices[row.Code] = row.PriceRsPerMeter
	}
	return prices, nil
}
