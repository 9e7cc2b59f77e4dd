package debug

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

type StuckJobsMetrics interface {
	RecordStuckRound(
		ctx context.Context, round types.AggregationRound, maxAttempts uint32, witnessBatches int, proverJobs int,
	)
}

type stuckJobDetector struct {
	source  StuckJobSource
	metrics StuckJobsMetrics
	logger  logging.Logger
}

func newStuckJobDetector(source StuckJobSource, metrics StuckJobsMetrics, logger logging.Logger) *stuckJobDetector {
	return &stuckJobDetector{
		source:  source,
		metrics: metrics,
		logger:  logger,
	}
}

// GetStuckJobs checks every round, regardless of what was found in the previous ones.
// Metrics are published only for a complete scan.
func (d *stuckJobDetector) GetStuckJobs(ctx context.Context, maxAttempts uint32) (*public.StuckJobsReport, error) {
	rounds := types.AllAggregationRounds()
	report := &public.StuckJobsReport{
		MaxAttempts: maxAttempts,
		Rounds:      make([]*public.StuckRoundJobs, 0, len(rounds)),
	}

	for _, round := range rounds {
		roundJobs, err := d.getStuckRoundJobs(ctx, round, maxAttempts)
		if err != nil {
			d.logger.Error().Err(err).Stringer(logging.FieldAggregationRound, round).Msg("failed to fetch stuck jobs")
			return nil, err
		}

		if !roundJobs.IsEmpty() {
			d.logger.Warn().
				Stringer(logging.FieldAggregationRound, round).
				Uint32(logging.FieldAttempts, maxAttempts).
				Int("witnessBatches", len(roundJobs.WitnessBatches)).
				Int("proverJobs", len(roundJobs.ProverJobs)).
				Msg("stuck jobs detected")
		}
		report.Rounds = append(report.Rounds, roundJobs)
	}

	for _, roundJobs := range report.Rounds {
		d.metrics.RecordStuckRound(
			ctx, roundJobs.Round, maxAttempts, len(roundJobs.WitnessBatches), len(roundJobs.ProverJobs),
		)
	}
	return report, nil
}

func (d *stuckJobDetector) getStuckRoundJobs(
	ctx context.Context, round types.AggregationRound, maxAttempts uint32,
) (*public.StuckRoundJobs, error) {
	witnessJobs, err := d.source.GetStuckWitnessJobs(ctx, round, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stuck %s witness jobs: %w", round, err)
	}
	proverJobs, err := d.source.GetStuckProverJobs(ctx, round, maxAttempts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stuck %s prover jobs: %w", round, err)
	}
	return public.NewStuckRoundJobs(round, witnessJobs, proverJobs), nil
}
