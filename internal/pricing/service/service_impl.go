package service

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"go.uber.org/fx"
	"go.uber.org/zap"

	accessorydomain "github.com/shushruth21/estre/internal/accessory/domain"
	catalogdomain "github.com/shushruth21/estre/internal/catalog/domain"
	"github.com/shushruth21/estre/internal/configuration"
	fabricpricedomain "github.com/shushruth21/estre/internal/fabricprice/domain"
	formuladomain "github.com/shushruth21/estre/internal/formula/domain"
	"github.com/shushruth21/estre/internal/observability/metrics"
	"github.com/shushruth21/estre/internal/pricing/domain"
	"github.com/shushruth21/estre/internal/telemetry"
)

const (
	defaultFirstSeatMeters      = 6.0
	defaultAdditionalSeatMeters = 3.0
)

type Params struct {
	fx.In

	Log         *zap.Logger
	Formulas    formuladomain.Service
	Catalog     catalogdomain.Service
	FabricPrice fabricpricedomain.Service
	Accessory   accessorydomain.Service
	Monitor     *telemetry.Monitor
	Metrics     *metrics.Metrics `optional:"true"`
}

type Service struct {
	log         *zap.Logger
	formulas    formuladomain.Service
	catalog     catalogdomain.Service
	fabricPrice fabricpricedomain.Service
	accessory   accessorydomain.Service
	monitor     *telemetry.Monitor
	metrics     *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		log:         p.Log.Named("pricing.service"),
		formulas:    p.Formulas,
		catalog:     p.Catalog,
		fabricPrice: p.FabricPrice,
		accessory:   p.Accessory,
		monitor:     p.Monitor,
		metrics:     p.Metrics,
	}
}

// Calculate runs the accumulation in a fixed order. Each step adds to the
// running total; the dimension upgrade compounds on everything before it,
// so reordering steps changes quotes.
func (s *Service) Calculate(ctx context.Context, cfg *configuration.Configuration) (quote *domain.Quote, err error) {
	start := time.Now()
	defer func() {
		s.monitor.Observe("pricing.calculate", time.Since(start), err != nil)
	}()

	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	set, err := s.formulas.ActiveSet(ctx, cfg.Category.FormulaCategory())
	if err != nil {
		return nil, err
	}

	product, err := s.catalog.Get(ctx, cfg.ProductID.String())
	if err != nil {
		return nil, err
	}

	var breakdown domain.Breakdown
	regular, corner, backrest := seatTotals(cfg)

	breakdown.BaseSeatPrice = roundMoney(product.NetPriceRs * set.FirstSeatPct / 100)
	running := breakdown.BaseSeatPrice

	if additional := regular - 1; additional > 0 {
		breakdown.AdditionalSeatsPrice = roundMoney(breakdown.BaseSeatPrice * set.AdditionalSeatPct / 100 * float64(additional))
		running += breakdown.AdditionalSeatsPrice
	}
	if corner > 0 {
		breakdown.CornerSeatsPrice = roundMoney(breakdown.BaseSeatPrice * set.CornerSeatPct / 100 * float64(corner))
		running += breakdown.CornerSeatsPrice
	}
	if backrest > 0 {
		breakdown.BackrestSeatsPrice = roundMoney(breakdown.BaseSeatPrice * set.BackrestSeatPct / 100 * float64(backrest))
		running += breakdown.BackrestSeatsPrice
	}

	breakdown.LoungerPrice = roundMoney(loungerPrice(set, cfg.Lounger))
	running += breakdown.LoungerPrice

	breakdown.ConsolePrice = roundMoney(consolePrice(set, cfg.Console))
	running += breakdown.ConsolePrice

	breakdown.PillowsPrice = roundMoney(pillowsPrice(set, cfg.Pillows))
	running += breakdown.PillowsPrice

	breakdown.FabricCharges = roundMoney(s.fabricCharges(ctx, cfg, product))
	running += breakdown.FabricCharges

	if cfg.FoamType != "" {
		if upgrade, ok := set.Lookup("foam_" + snake(cfg.FoamType)); ok {
			breakdown.FoamUpgrade = roundMoney(upgrade)
			running += breakdown.FoamUpgrade
		}
	}

	if pct := dimensionPct(set, cfg.Dimensions); pct > 0 {
		breakdown.DimensionUpgrade = roundMoney(running * pct / 100)
		running += breakdown.DimensionUpgrade
	}

	breakdown.AccessoriesPrice = roundMoney(s.accessoriesPrice(ctx, cfg.AccessoryCodes))
	running += breakdown.AccessoriesPrice

	breakdown.Subtotal = running

	if cfg.DiscountCode != "" {
		if pct, ok := set.Lookup("discount_" + strings.ToLower(cfg.DiscountCode)); ok {
			breakdown.DiscountAmount = roundMoney(breakdown.Subtotal * pct / 100)
		}
	}
	breakdown.Total = breakdown.Subtotal - breakdown.DiscountAmount

	s.metrics.RecordQuote(ctx, cfg.Category.FormulaCategory())
	return &domain.Quote{Breakdown: breakdown, Total: breakdown.Total}, nil
}

// fabricCharges bills the whole fabric charge at the structure fabric's
// unit price. The other region codes are resolved but not separately
// priced. A failed price fetch degrades to zero rather than aborting.
func (s *Service) fabricCharges(ctx context.Context, cfg *configuration.Configuration, product *catalogdomain.Product) float64 {
	codes := cfg.Fabric.Codes()
	if len(codes) == 0 {
		return 0
	}

	prices, err := s.fabricPrice.PriceByCodes(ctx, codes)
	if err != nil {
		s.log.Warn("fabric price lookup degraded", zap.Error(err))
		s.metrics.RecordDegradedLookup(ctx, "fabric_price")
		return 0
	}

	reqs := product.FabricRequirements.Data()
	firstSeat := orDefault(reqs.FirstSeatMeters, defaultFirstSeatMeters)
	additional := orDefault(reqs.AdditionalSeatMeters, defaultAdditionalSeatMeters)

	structurePrice := prices[cfg.Fabric.StructureCode]
	charge := structurePrice * firstSeat
	if seats := cfg.SeatCount(); seats > 1 {
		charge += structurePrice * additional * float64(seats-1)
	}
	return charge
}

func (s *Service) accessoriesPrice(ctx context.Context, codes []string) float64 {
	if len(codes) == 0 {
		return 0
	}
	total, err := s.accessory.TotalPrice(ctx, codes)
	if err != nil {
		s.log.Warn("accessory price lookup degraded", zap.Error(err))
		s.metrics.RecordDegradedLookup(ctx, "accessory_price")
		return 0
	}
	return total
}

func seatTotals(cfg *configuration.Configuration) (regular, corner, backrest int) {
	for _, section := range cfg.Sections {
		if section.Quantity <= 0 {
			continue
		}
		seats := section.Seater.Seats
		if seats < 1 {
			seats = 1
		}
		switch section.Seater.Kind {
		case configuration.SeaterRegular:
			regular += seats * section.Quantity
		case configuration.SeaterCorner:
			corner += seats * section.Quantity
		case configuration.SeaterBackrest:
			backrest += seats * section.Quantity
		}
	}
	return regular, corner, backrest
}

func loungerPrice(set *formuladomain.Set, lounger *configuration.Lounger) float64 {
	if lounger == nil || !lounger.Required || lounger.Quantity <= 0 {
		return 0
	}
	price := set.LoungerBase + set.LoungerAdditional6In*float64(lounger.Size.UpgradeSteps())
	if lounger.Storage {
		price += set.LoungerStorage
	}
	return price * float64(lounger.Quantity)
}

func consolePrice(set *formuladomain.Set, console *configuration.Console) float64 {
	if console == nil || !console.Required || console.Quantity <= 0 {
		return 0
	}
	unit := set.Console10In
	if console.Size == configuration.Console6In {
		unit = set.Console6In
	}
	return unit * float64(console.Quantity)
}

func pillowsPrice(set *formuladomain.Set, pillows *configuration.Pillows) float64 {
	if pillows == nil || !pillows.Required || pillows.Quantity <= 0 {
		return 0
	}
	var unit float64
	switch pillows.Type {
	case configuration.PillowDiamondQuilted:
		unit = set.PillowDiamondQuilted
	case configuration.PillowBeltQuilted:
		unit = set.PillowBeltQuilted
	case configuration.PillowTassels:
		unit = set.PillowTassels
	default:
		unit = set.PillowSimple
	}
	return unit * float64(pillows.Quantity)
}

func dimensionPct(set *formuladomain.Set, dims configuration.Dimensions) float64 {
	var pct float64
	if dims.SeatDepthIn > 0 {
		if v, ok := set.Lookup(fmt.Sprintf("seat_depth_%d", dims.SeatDepthIn)); ok {
			pct += v
		}
	}
	if dims.SeatWidthIn > 0 {
		if v, ok := set.Lookup(fmt.Sprintf("seat_width_%d", dims.SeatWidthIn)); ok {
			pct += v
		}
	}
	return pct
}

// roundMoney rounds a rupee amount to the nearest whole rupee. Every
// breakdown bucket is rounded as it is computed, so subtotal and total
// stay whole without a second pass.
func roundMoney(raw float64) float64 {
	return math.Floor(raw + 0.5)
}

func snake(s string) string {
	fields := strings.Fields(strings.ToLower(strings.ReplaceAll(s, "-", " ")))
	return strings.Join(fields, "_")
}

func orDefault(value *float64, fallback float64) float64 {
	if value != nil {
		return *value
	}
	return fallback
}
