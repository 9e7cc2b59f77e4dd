package debug

import (
	"context"

	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

// BatchJobSource provides the jobs of a single batch, stage by stage.
// Single-job getters return nil if the job does not exist.
type BatchJobSource interface {
	GetWitnessInputJob(ctx context.Context, batch types.L1BatchNumber) (*types.WitnessGeneratorJob, error)
	GetLeafWitnessJobs(ctx context.Context, batch types.L1BatchNumber) ([]*types.WitnessGeneratorJob, error)
	GetNodeWitnessJobs(ctx context.Context, batch types.L1BatchNumber) ([]*types.WitnessGeneratorJob, error)
	GetRecursionTipWitnessJob(ctx context.Context, batch types.L1BatchNumber) (*types.WitnessGeneratorJob, error)
	GetSchedulerWitnessJob(ctx context.Context, batch types.L1BatchNumber) (*types.WitnessGeneratorJob, error)
	GetProverJobs(
		ctx context.Context, batch types.L1BatchNumber, round types.AggregationRound,
	) ([]*types.ProverJob, error)
	GetCompressionJob(ctx context.Context, batch types.L1BatchNumber) (*types.CompressionJob, error)
}

// StuckJobSource provides jobs of all batches which used up their retry budget.
type StuckJobSource interface {
	GetStuckWitnessJobs(
		ctx context.Context, round types.AggregationRound, maxAttempts uint32,
	) ([]*types.WitnessGeneratorJob, error)
	GetStuckProverJobs(
		ctx context.Context, round types.AggregationRound, maxAttempts uint32,
	) ([]*types.ProverJob, error)
}
