package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

type Meter = metric.Meter

type Config struct {
	ServiceName string

	// MetricsEndpoint is the url of an OTLP gRPC collector, metrics are not exported when it is empty.
	MetricsEndpoint string
}

func Init(ctx context.Context, config *Config) error {
	if err := initMetrics(ctx, config); err != nil {
		return err
	}
	return nil
}

// Shutdown flushes metrics recorded since the last export.
func Shutdown(ctx context.Context) {
	shutdownMetrics(ctx)
}

func NewMeter(name string) Meter {
	return otel.Meter(name)
}
