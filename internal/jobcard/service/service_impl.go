package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
	"github.com/shushruth21/estre/internal/fabric"
	"github.com/shushruth21/estre/internal/jobcard/domain"
	"github.com/shushruth21/estre/internal/observability/metrics"
	"github.com/shushruth21/estre/internal/telemetry"
)

var (
	ErrConfigurationRequired = errors.New("configuration is required")
	ErrOrderRequired         = errors.New("sale order number and line item id are required")
	ErrJobCardNotFound       = errors.New("job card not found")
)

// Recliner job cards read their per-seat meters from product metadata.
const (
	metaFirstReclinerMtrs  = "fabric_first_recliner_mtrs"
	metaAdditionalSeatMtrs = "fabric_additional_seat_mtrs"
	metaCornerMtrs         = "fabric_corner_mtrs"
	metaBackrestMtrs       = "fabric_backrest_mtrs"
)

// meterTable drives per-section fabric accumulation.
type meterTable struct {
	first      float64
	additional float64
	corner     float64
	backrest   float64
	console    float64
}

type Params struct {
	fx.In

	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Catalog catalogdomain.Service
	Monitor *telemetry.Monitor
	Metrics *metrics.Metrics `optional:"true"`
}

type Service struct {
	log     *zap.Logger
	genID   *snowflake.Node
	repo    domain.Repository
	catalog catalogdomain.Service
	monitor *telemetry.Monitor
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:     p.Log.Named("jobcard.service"),
		genID:   p.GenID,
		repo:    p.Repo,
		catalog: p.Catalog,
		monitor: p.Monitor,
		metrics: p.Metrics,
	}
}

func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (card *domain.JobCard, err error) {
	start := time.Now()
	defer func() {
		s.monitor.Observe("jobcard.generate", time.Since(start), err != nil)
	}()

	cfg := req.Configuration
	if cfg == nil {
		return nil, ErrConfigurationRequired
	}
	if req.SaleOrderNumber == "" || req.LineItemID == "" {
		return nil, ErrOrderRequired
	}

	reqs, metadata := s.productConstants(ctx, cfg.ProductID)
	table := metersFor(cfg.Category, reqs, metadata)

	entries := fabric.CalculateRequirements(cfg.Category, reqs, cfg)
	totalMeters := fabric.TotalMeters(entries)

	data := domain.GeneratedData{
		JobCardNumber:     DeriveNumber(req.SaleOrderNumber, req.LineItemID),
		Category:          string(cfg.Category),
		Sections:          sectionSummaries(cfg, table),
		Console:           consoleSummary(cfg, table),
		DummySeats:        dummySeatSummary(cfg, table),
		FabricPlan:        fabricPlanSummary(cfg, table, totalMeters),
		FabricEntries:     entries,
		TotalFabricMeters: totalMeters,
		Pricing:           req.Breakdown,
	}

	// The number is deterministic per line item, so a retried confirmation
	// refreshes the existing card instead of colliding on the unique index.
	existing, err := s.repo.FindByNumber(ctx, data.JobCardNumber)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		existing.SaleOrderID = req.SaleOrderID
		existing.LineItemID = req.LineItemID
		existing.Category = data.Category
		existing.Data = datatypes.NewJSONType(data)
		if err = s.repo.Update(ctx, existing); err != nil {
			s.log.Error("refresh job card", zap.String("number", existing.Number), zap.Error(err))
			return nil, err
		}
		s.metrics.RecordJobCard(ctx, cfg.Category.FormulaCategory())
		return existing, nil
	}

	card = &domain.JobCard{
		ID:          s.genID.Generate(),
		Number:      data.JobCardNumber,
		SaleOrderID: req.SaleOrderID,
		LineItemID:  req.LineItemID,
		Category:    data.Category,
		Data:        datatypes.NewJSONType(data),
	}

	if err = s.repo.Create(ctx, card); err != nil {
		s.log.Error("persist job card", zap.String("number", card.Number), zap.Error(err))
		return nil, err
	}

	s.metrics.RecordJobCard(ctx, cfg.Category.FormulaCategory())
	return card, nil
}

func (s *Service) Get(ctx context.Context, number string) (*domain.JobCard, error) {
	card, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	if card == nil {
		return nil, ErrJobCardNotFound
	}
	return card, nil
}

func (s *Service) ListBySaleOrder(ctx context.Context, saleOrderID snowflake.ID) ([]*domain.JobCard, error) {
	return s.repo.ListBySaleOrder(ctx, saleOrderID)
}

// productConstants fetches fabric requirements and metadata. A failed
// fetch is degraded, not fatal: the card is generated from defaults.
func (s *Service) productConstants(ctx context.Context, productID snowflake.ID) (catalogdomain.FabricRequirements, map[string]any) {
	if productID == 0 {
		return catalogdomain.FabricRequirements{}, nil
	}
	product, err := s.catalog.Get(ctx, productID.String())
	if err != nil {
		s.log.Warn("product metadata lookup degraded",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
		s.metrics.RecordDegradedLookup(ctx, "product_metadata")
		return catalogdomain.FabricRequirements{}, nil
	}
	return product.FabricRequirements.Data(), product.Metadata
}

// DeriveNumber builds the job card number from the sale order number with
// non-alphanumerics stripped, joined to the last four characters of the
// line item id, uppercased and left-padded to four.
func DeriveNumber(saleOrderNumber, lineItemID string) string {
	var so strings.Builder
	for _, r := range saleOrderNumber {
		if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			so.WriteRune(r)
		}
	}

	suffix := lineItemID
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	suffix = strings.ToUpper(suffix)
	for len(suffix) < 4 {
		suffix = "0" + suffix
	}

	return so.String() + "-" + suffix
}

func metersFor(category configuration.Category, reqs catalogdomain.FabricRequirements, metadata map[string]any) meterTable {
	switch category {
	case configuration.CategoryRecliner, configuration.CategoryCinemaChair:
		return meterTable{
			first:      metaFloat(metadata, metaFirstReclinerMtrs, 8),
			additional: metaFloat(metadata, metaAdditionalSeatMtrs, 5),
			corner:     metaFloat(metadata, metaCornerMtrs, 7),
			backrest:   metaFloat(metadata, metaBackrestMtrs, 2),
			console:    orDefault(reqs.ConsoleMeters, 1.5),
		}
	default:
		return meterTable{
			first:      orDefault(reqs.FirstSeatMeters, 6),
			additional: orDefault(reqs.AdditionalSeatMeters, 3),
			corner:     orDefault(reqs.CornerSeatMeters, 7),
			backrest:   orDefault(reqs.BackrestSeatMeters, 2),
			console:    orDefault(reqs.ConsoleMeters, 1.5),
		}
	}
}

// sectionSummaries accumulates first-seat plus additional-seat meters in
// section order, mirroring the pricing engine's pattern.
func sectionSummaries(cfg *configuration.Configuration, table meterTable) []domain.SectionSummary {
	var summaries []domain.SectionSummary
	firstSeatUsed := false
	for _, section := range cfg.Sections {
		if section.Quantity <= 0 || section.Seater.Kind == configuration.SeaterNone {
			continue
		}
		seats := section.Seater.Seats
		if seats < 1 {
			seats = 1
		}

		var meters float64
		switch section.Seater.Kind {
		case configuration.SeaterCorner:
			meters = table.corner * float64(seats)
		case configuration.SeaterBackrest:
			meters = table.backrest * float64(seats)
		default:
			meters = table.additional * float64(seats)
			if !firstSeatUsed {
				meters = table.first + table.additional*float64(seats-1)
				firstSeatUsed = true
			}
		}

		summaries = append(summaries, domain.SectionSummary{
			Position:     section.Position,
			SeaterType:   section.Seater.Raw,
			Quantity:     section.Quantity,
			FabricMeters: meters * float64(section.Quantity),
		})
	}
	return summaries
}

func consoleSummary(cfg *configuration.Configuration, table meterTable) domain.ConsoleSummary {
	if cfg.Console == nil || !cfg.Console.Required || cfg.Console.Quantity <= 0 {
		return domain.ConsoleSummary{}
	}
	return domain.ConsoleSummary{
		Required:     true,
		Size:         cfg.Console.Size.String(),
		Quantity:     cfg.Console.Quantity,
		FabricMeters: table.console * float64(cfg.Console.Quantity),
	}
}

func dummySeatSummary(cfg *configuration.Configuration, table meterTable) domain.DummySeatSummary {
	if cfg.DummySeats <= 0 {
		return domain.DummySeatSummary{}
	}
	return domain.DummySeatSummary{
		Quantity:     cfg.DummySeats,
		FabricMeters: table.additional * float64(cfg.DummySeats),
	}
}

// fabricPlanSummary keeps the dual-colour split exactly as produced
// upstream: base is total divided by 1.05, then 75% structure and 30%
// armrest. The percentages deliberately do not sum to 100.
func fabricPlanSummary(cfg *configuration.Configuration, table meterTable, totalMeters float64) domain.FabricPlanSummary {
	summary := domain.FabricPlanSummary{
		ColourMode:  string(configuration.SingleColour),
		TotalMeters: totalMeters,
		BaseMeters:  table.first,
	}
	if cfg.Fabric == nil {
		return summary
	}

	summary.ColourMode = string(cfg.Fabric.ColourMode)
	summary.StructureCode = cfg.Fabric.StructureCode
	summary.BackrestCode = cfg.Fabric.BackrestCode
	summary.SeatCode = cfg.Fabric.SeatCode
	summary.HeadrestCode = cfg.Fabric.HeadrestCode

	if cfg.Fabric.ColourMode == configuration.DualColour {
		base := totalMeters / 1.05
		summary.BaseMeters = base
		summary.StructureMeters = base * 0.75
		summary.ArmrestMeters = base * 0.30
	}
	return summary
}

func metaFloat(metadata map[string]any, key string, fallback float64) float64 {
	if metadata == nil {
		return fallback
	}
	switch v := metadata[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return fallback
	}
}

func orDefault(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}
