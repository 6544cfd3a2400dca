package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/shushruth21/estre/internal/clock"
	"github.com/shushruth21/estre/internal/configuration"
	"github.com/shushruth21/estre/internal/observability/metrics"
	"github.com/shushruth21/estre/internal/qir/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

var ErrJobCardNumberRequired = errors.New("job card number is required")

type Params struct {
	fx.In

	Log     *zap.Logger
	Repo    domain.Repository
	Clock   clock.Clock
	Monitor *telemetry.Monitor
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	repo    domain.Repository
	clock   clock.Clock
	monitor *telemetry.Monitor
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("qir.service"),
		repo:    p.Repo,
		clock:   p.Clock,
		monitor: p.Monitor,
		metrics: p.Metrics,
	}
}

func (s *Service) Checklist(category configuration.Category) []domain.CheckCategory {
	return domain.ChecklistForCategory(category)
}

func (s *Service) Submit(ctx context.Context, req domain.SubmitRequest) (report *domain.InspectionReport, err error) {
	start := time.Now()
	defer func() {
		s.monitor.Observe("qir.submit", time.Since(start), err != nil)
	}()

	if req.JobCardNumber == "" {
		return nil, ErrJobCardNumberRequired
	}

	scores := domain.CalculateScores(req.Checklist)
	rework := domain.DecideRework(req.Defects)

	report = &domain.InspectionReport{
		ID:            uuid.New(),
		JobCardNumber: req.JobCardNumber,
		Category:      req.Category,
		Checklist:     datatypes.NewJSONType(req.Checklist),
		Defects:       datatypes.NewJSONType(req.Defects),
		Scores:        datatypes.NewJSONType(scores),
		Rework:        datatypes.NewJSONType(rework),
		Status:        scores.Status,
		InspectedBy:   req.InspectedBy,
		InspectedAt:   s.clock.Now(),
	}

	if err = s.repo.Create(ctx, report); err != nil {
		s.log.Error("persist inspection report",
			zap.String("job_card", req.JobCardNumber),
			zap.Error(err),
		)
		return nil, err
	}

	s.metrics.RecordInspection(ctx, report.Status)
	return report, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.InspectionReport, error) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrReportNotFound
	}
	return report, nil
}

func (s *Service) ListByJobCard(ctx context.Context, jobCardNumber string) ([]*domain.InspectionReport, error) {
	return s.repo.ListByJobCard(ctx, jobCardNumber)
}
