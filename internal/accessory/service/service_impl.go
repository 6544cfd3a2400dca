package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shushruth21/estre/internal/accessory/domain"
)

type serviceImpl struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewService(repo domain.Repository, log *zap.Logger) domain.Service {
	return &serviceImpl{repo: repo, log: log.Named("accessory")}
}

func (s *serviceImpl) TotalPrice(ctx context.Context, codes []string) (float64, error) {
	filtered := make([]string, 0, len(codes))
	for _, code := range codes {
		if code != "" {
			filtered = append(filtered, code)
		}
	}
	if len(filtered) == 0 {
		return 0, nil
	}

	rows, err := s.repo.FindByCodes(ctx, filtered)
	if err != nil {
		s.log.Error("fetch accessories", zap.Strings("codes", filtered), zap.Error(err))
		return 0, err
	}

	var total float64
	for _, row := range rows {
		total += row.PriceRs
	}
	return total, nil
}
