package public

import "context"

// ProverStatusApi gives read access to the state of batch proving.
type ProverStatusApi interface {
	// GetBatchData returns all six stages of the batch; a batch without any jobs is not an error.
	GetBatchData(ctx context.Context, batch L1BatchNumber) (*BatchData, error)

	// GetStuckJobs scans every aggregation round for jobs with maxAttempts attempts which did not succeed.
	GetStuckJobs(ctx context.Context, maxAttempts uint32) (*StuckJobsReport, error)
}

// BatchL1Api gives access to settlement data of batches.
type BatchL1Api interface {
	GetBatchesL1Timestamps(ctx context.Context, batches []L1BatchNumber) ([]*BatchL1Timestamps, error)
}

// ProverAdminApi performs manual interventions into batch proving.
type ProverAdminApi interface {
	RestartBatch(ctx context.Context, batch L1BatchNumber) error
	RestartProverJob(ctx context.Context, id uint32) error
	InsertWitnessInput(ctx context.Context, input WitnessInput) error
}
