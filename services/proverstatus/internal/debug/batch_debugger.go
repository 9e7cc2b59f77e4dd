package debug

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"golang.org/x/sync/errgroup"
)

type batchDebugger struct {
	source BatchJobSource
	logger logging.Logger
}

func newBatchDebugger(source BatchJobSource, logger logging.Logger) *batchDebugger {
	return &batchDebugger{
		source: source,
		logger: logger,
	}
}

// GetBatchData fetches all stages of the batch concurrently.
// Each stage is written into its own field of the result, so the result does not depend on fetch order.
func (d *batchDebugger) GetBatchData(ctx context.Context, batch types.L1BatchNumber) (*public.BatchData, error) {
	data := &public.BatchData{BatchNumber: batch}
	group, gCtx := errgroup.WithContext(ctx)

	group.Go(stageFetcher(gCtx, d.source, batch, types.BasicCircuits,
		d.source.GetWitnessInputJob, public.NewBasicWitnessGeneratorInfo, &data.BasicWitnessGenerator))

	group.Go(stageFetcher(gCtx, d.source, batch, types.LeafAggregation,
		d.source.GetLeafWitnessJobs, public.NewLeafWitnessGeneratorInfo, &data.LeafWitnessGenerator))

	group.Go(stageFetcher(gCtx, d.source, batch, types.NodeAggregation,
		d.source.GetNodeWitnessJobs, public.NewNodeWitnessGeneratorInfo, &data.NodeWitnessGenerator))

	group.Go(stageFetcher(gCtx, d.source, batch, types.RecursionTip,
		d.source.GetRecursionTipWitnessJob, public.NewRecursionTipInfo, &data.RecursionTip))

	group.Go(stageFetcher(gCtx, d.source, batch, types.Scheduler,
		d.source.GetSchedulerWitnessJob, public.NewSchedulerInfo, &data.Scheduler))

	group.Go(func() error {
		job, err := d.source.GetCompressionJob(gCtx, batch)
		if err != nil {
			return fmt.Errorf("%s: %w", types.StageCompressor, err)
		}
		data.Compressor = public.NewCompressorInfo(job)
		return nil
	})

	if err := group.Wait(); err != nil {
		d.logger.Error().Err(err).Stringer(logging.FieldBatchNumber, batch).Msg("failed to fetch batch data")
		return nil, fmt.Errorf("failed to fetch data of batch %d: %w", batch, err)
	}

	d.logger.Debug().Stringer(logging.FieldBatchNumber, batch).Msg("batch data fetched")
	return data, nil
}

// stageFetcher returns an errgroup task which loads the witness and prover jobs of a round into dst.
func stageFetcher[W any, I any](
	ctx context.Context,
	source BatchJobSource,
	batch types.L1BatchNumber,
	round types.AggregationRound,
	fetchWitness func(context.Context, types.L1BatchNumber) (W, error),
	newInfo func(W, []*types.ProverJob) I,
	dst *I,
) func() error {
	return func() error {
		stage := types.StageOf(round)

		witness, err := fetchWitness(ctx, batch)
		if err != nil {
			return fmt.Errorf("%s witness jobs: %w", stage, err)
		}
		proverJobs, err := source.GetProverJobs(ctx, batch, round)
		if err != nil {
			return fmt.Errorf("%s prover jobs: %w", stage, err)
		}

		*dst = newInfo(witness, proverJobs)
		return nil
	}
}
