package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/drainkit/drainkit/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// DrainMetrics holds OpenTelemetry metric instruments for drain operations.
// It satisfies the drain package's Recorder interface.
type DrainMetrics struct {
	itemsClaimed  metric.Int64Counter
	itemsWritten  metric.Int64Counter
	workersActive metric.Int64UpDownCounter
	drainDuration metric.Float64Histogram
	drainTotal    metric.Int64Counter
}

// NewDrainMetrics creates drain metric instruments on the given meter.
func NewDrainMetrics(meter metric.Meter) (*DrainMetrics, error) {
	itemsClaimed, err := meter.Int64Counter("drain.items.claimed",
		metric.WithDescription("Items claimed from the source"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drain.items.claimed counter: %w", err)
	}

	itemsWritten, err := meter.Int64Counter("drain.items.written",
		metric.WithDescription("Items written to the sink"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drain.items.written counter: %w", err)
	}

	workersActive, err := meter.Int64UpDownCounter("drain.workers.active",
		metric.WithDescription("Workers currently draining"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drain.workers.active gauge: %w", err)
	}

	drainDuration, err := meter.Float64Histogram("drain.duration",
		metric.WithDescription("Duration of drain operations in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drain.duration histogram: %w", err)
	}

	drainTotal, err := meter.Int64Counter("drain.total",
		metric.WithDescription("Total drain operations by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating drain.total counter: %w", err)
	}

	return &DrainMetrics{
		itemsClaimed:  itemsClaimed,
		itemsWritten:  itemsWritten,
		workersActive: workersActive,
		drainDuration: drainDuration,
		drainTotal:    drainTotal,
	}, nil
}

// WorkerStarted increments the active worker count.
func (m *DrainMetrics) WorkerStarted(ctx context.Context) {
	m.workersActive.Add(ctx, 1)
}

// WorkerStopped decrements the active worker count.
func (m *DrainMetrics) WorkerStopped(ctx context.Context) {
	m.workersActive.Add(ctx, -1)
}

// ItemClaimed records one item claimed from the source.
func (m *DrainMetrics) ItemClaimed(ctx context.Context) {
	m.itemsClaimed.Add(ctx, 1)
}

// ItemWritten records one item written to the sink.
func (m *DrainMetrics) ItemWritten(ctx context.Context) {
	m.itemsWritten.Add(ctx, 1)
}

// OperationDone records a finished drain operation with its outcome.
func (m *DrainMetrics) OperationDone(ctx context.Context, outcome string, elapsed time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
	)
	m.drainTotal.Add(ctx, 1, attrs)
	m.drainDuration.Record(ctx, elapsed.Seconds(), attrs)
}
