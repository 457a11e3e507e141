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

	"github.com/kbukum/promostandards/logger"
	"github.com/kbukum/promostandards/version"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	ServiceName    string `mapstructure:"service_name"`
	ServiceVersion string `mapstructure:"service_version"`
	Environment    string `mapstructure:"environment"`
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string `mapstructure:"endpoint"`
	Insecure bool   `mapstructure:"insecure"`
	// Interval is the metric export interval.
	Interval time.Duration `mapstructure:"interval"`
}

// ApplyDefaults fills zero values.
func (c *MeterConfig) ApplyDefaults() {
	if c.ServiceName == "" {
		c.ServiceName = "promostandards"
	}
	if c.ServiceVersion == "" {
		c.ServiceVersion = version.Get().Version
	}
	if c.Endpoint == "" {
		c.Endpoint = "localhost:4318"
	}
	if c.Interval <= 0 {
		c.Interval = 15 * time.Second
	}
}

// InitMeter installs a global meter provider exporting over OTLP/HTTP.
// The caller shuts the provider down on exit.
func InitMeter(ctx context.Context, config MeterConfig) (*sdkmetric.MeterProvider, error) {
	config.ApplyDefaults()

	opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(config.Endpoint)}
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

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(config.Interval))),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		logger.FieldService, config.ServiceName,
		logger.FieldEndpoint, config.Endpoint,
		"interval", config.Interval.String(),
	))
	return mp, nil
}

// Meter returns the client meter from the global provider.
func Meter() metric.Meter {
	return otel.Meter(InstrumentationName)
}

// Metric names.
const (
	MetricCalls        = "promostandards.client.calls"
	MetricCallDuration = "promostandards.client.call.duration"
	MetricCallsActive  = "promostandards.client.calls.active"
)

// Metrics holds the instruments recorded for each call.
type Metrics struct {
	calls        metric.Int64Counter
	callDuration metric.Float64Histogram
	callsActive  metric.Int64UpDownCounter
}

// NewMetrics creates the call instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	calls, err := meter.Int64Counter(MetricCalls,
		metric.WithDescription("PromoStandards calls by service, operation and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricCalls, err)
	}

	callDuration, err := meter.Float64Histogram(MetricCallDuration,
		metric.WithDescription("Duration of PromoStandards calls"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCallDuration, err)
	}

	callsActive, err := meter.Int64UpDownCounter(MetricCallsActive,
		metric.WithDescription("PromoStandards calls in flight"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s gauge: %w", MetricCallsActive, err)
	}

	return &Metrics{
		calls:        calls,
		callDuration: callDuration,
		callsActive:  callsActive,
	}, nil
}

// RecordCallStart increments the in-flight gauge.
func (m *Metrics) RecordCallStart(ctx context.Context, service, operation string) {
	m.callsActive.Add(ctx, 1, metric.WithAttributes(
		attribute.String("service", service),
		attribute.String("operation", operation),
	))
}

// RecordCallEnd decrements the in-flight gauge and records the finished call.
func (m *Metrics) RecordCallEnd(ctx context.Context, service, operation, status string, duration time.Duration) {
	base := []attribute.KeyValue{
		attribute.String("service", service),
		attribute.String("operation", operation),
	}
	m.callsActive.Add(ctx, -1, metric.WithAttributes(base...))
	m.calls.Add(ctx, 1, metric.WithAttributes(append(base, attribute.String("status", status))...))
	m.callDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(base...))
}
