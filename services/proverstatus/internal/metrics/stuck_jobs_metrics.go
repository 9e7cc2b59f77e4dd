package metrics

import (
	"context"

	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	attrAggregationRound = "aggregation_round"
	attrMaxAttempts      = "max_attempts"
)

// StuckJobsMetrics publishes the outcome of every stuck jobs scan, one data point per aggregation round.
// Gauges are overwritten by each scan, so a round that recovered drops back to zero.
type StuckJobsMetrics struct {
	attributes metric.MeasurementOption

	stuckWitnessBatches metric.Int64Gauge
	stuckProverJobs     metric.Int64Gauge
}

func NewStuckJobsMetrics(name string, meter metric.Meter) (*StuckJobsMetrics, error) {
	m := &StuckJobsMetrics{}
	if err := m.init(name, metric.WithAttributes(), meter); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *StuckJobsMetrics) init(name string, attributes metric.MeasurementOption, meter metric.Meter) error {
	m.attributes = attributes
	var err error

	if m.stuckWitnessBatches, err = meter.Int64Gauge(
		name+"_stuck_witness_batches",
		metric.WithDescription("Batches with a witness job which ran out of attempts"),
	); err != nil {
		return err
	}

	if m.stuckProverJobs, err = meter.Int64Gauge(
		name+"_stuck_prover_jobs",
		metric.WithDescription("Prover jobs which ran out of attempts"),
	); err != nil {
		return err
	}

	return nil
}

func (m *StuckJobsMetrics) RecordStuckRound(
	ctx context.Context, round types.AggregationRound, maxAttempts uint32, witnessBatches int, proverJobs int,
) {
	roundAttributes := metric.WithAttributes(
		attribute.String(attrAggregationRound, round.String()),
		attribute.Int64(attrMaxAttempts, int64(maxAttempts)),
	)
	m.stuckWitnessBatches.Record(ctx, int64(witnessBatches), m.attributes, roundAttributes)
	m.stuckProverJobs.Record(ctx, int64(proverJobs), m.attributes, roundAttributes)
}
