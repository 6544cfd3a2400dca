package metrics

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Config configures the metrics provider.
type Config struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	ServiceName      string
	Environment      string
}

// Metrics exposes application-level instruments.
type Metrics struct {
	quotesCalculated  metric.Int64Counter
	jobCardsGenerated metric.Int64Counter
	inspectionsScored metric.Int64Counter
	degradedLookups   metric.Int64Counter
}

// NewProvider configures and registers the meter provider.
func NewProvider(lc fx.Lifecycle, cfg Config, log *zap.Logger) (metric.MeterProvider, error) {
	if !cfg.Enabled {
		provider := noop.NewMeterProvider()
		otel.SetMeterProvider(provider)
		return provider, nil
	}

	exporter, err := newExporter(cfg.ExporterProtocol, cfg.ExporterEndpoint)
	if err != nil {
		return nil, err
	}

	reader := sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(10*time.Second))
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	otel.SetMeterProvider(provider)

	if lc != nil {
		lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				if log != nil {
					log.Info("shutting down meter provider")
				}
				return provider.Shutdown(ctx)
			},
		})
	}

	if log != nil {
		log.Info("metrics initialized",
			zap.String("endpoint", cfg.ExporterEndpoint),
			zap.String("protocol", cfg.ExporterProtocol),
		)
	}

	return provider, nil
}

// New configures the domain metrics instruments.
func New(cfg Config, provider metric.MeterProvider) (*Metrics, error) {
	name := strings.TrimSpace(cfg.ServiceName)
	if name == "" {
		name = "estre"
	}
	meter := provider.Meter(name)

	quotes, err := meter.Int64Counter("pricing.quotes_calculated")
	if err != nil {
		return nil, err
	}
	jobCards, err := meter.Int64Counter("jobcard.generated")
	if err != nil {
		return nil, err
	}
	inspections, err := meter.Int64Counter("qir.inspections_scored")
	if err != nil {
		return nil, err
	}
	degraded, err := meter.Int64Counter("pricing.degraded_lookups")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		quotesCalculated:  quotes,
		jobCardsGenerated: jobCards,
		inspectionsScored: inspections,
		degradedLookups:   degraded,
	}, nil
}

// RecordQuote counts one pricing calculation for the category.
func (m *Metrics) RecordQuote(ctx context.Context, category string) {
	if m == nil {
		return
	}
	m.quotesCalculated.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

// RecordJobCard counts one generated job card.
func (m *Metrics) RecordJobCard(ctx context.Context, category string) {
	if m == nil {
		return
	}
	m.jobCardsGenerated.Add(ctx, 1, metric.WithAttributes(attribute.String("category", category)))
}

// RecordInspection counts one scored quality inspection.
func (m *Metrics) RecordInspection(ctx context.Context, status string) {
	if m == nil {
		return
	}
	m.inspectionsScored.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

// RecordDegradedLookup counts a secondary-path lookup that fell back to defaults.
func (m *Metrics) RecordDegradedLookup(ctx context.Context, source string) {
	if m == nil {
		return
	}
	m.degradedLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("source", source)))
}

func newExporter(protocol, endpoint string) (sdkmetric.Exporter, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	protocol = strings.ToLower(strings.TrimSpace(protocol))
	endpoint = strings.TrimSpace(endpoint)

	switch protocol {
	case "http", "http/protobuf":
		opts := []otlpmetrichttp.Option{}
		if endpoint != "" {
			opts = append(opts, otlpmetrichttp.WithEndpoint(endpoint))
		}
		return otlpmetrichttp.New(ctx, opts...)
	case "grpc", "grpc/protobuf", "":
		opts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithInsecure()}
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		}
		return otlpmetricgrpc.New(ctx, opts...)
	default:
		return nil, fmt.Errorf("unsupported OTLP protocol %q", protocol)
	}
}
