package storage

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"gorm.io/gorm"
)

// JobRecordStorage is a read layer over job tables written by the proving pipeline.
// The only writes it performs are the explicit batch restart and witness input insertion.
type JobRecordStorage struct {
	db     *gorm.DB
	logger logging.Logger
}

func NewJobRecordStorage(db *gorm.DB, logger logging.Logger) *JobRecordStorage {
	return &JobRecordStorage{
		db:     db,
		logger: logger,
	}
}

// witnessTable describes how jobs of one aggregation round are laid out in its witness table.
type witnessTable struct {
	name    string
	columns string
	orderBy string
}

var witnessTables = [types.AggregationRoundsCount]witnessTable{
	types.BasicCircuits: {
		name:    witnessInputsTable,
		columns: "l1_batch_number, " + commonJobColumns,
		orderBy: "l1_batch_number",
	},
	types.LeafAggregation: {
		name:    leafAggregationWitnessTable,
		columns: "id, l1_batch_number, circuit_id, " + commonJobColumns,
		orderBy: "l1_batch_number, circuit_id, id",
	},
	types.NodeAggregation: {
		name:    nodeAggregationWitnessTable,
		columns: "id, l1_batch_number, circuit_id, depth, " + commonJobColumns,
		orderBy: "l1_batch_number, circuit_id, depth, id",
	},
	types.RecursionTip: {
		name:    recursionTipWitnessTable,
		columns: "l1_batch_number, " + commonJobColumns,
		orderBy: "l1_batch_number",
	},
	types.Scheduler: {
		name:    schedulerWitnessTable,
		columns: "l1_batch_number, " + commonJobColumns,
		orderBy: "l1_batch_number",
	},
}

func witnessTableOf(round types.AggregationRound) (witnessTable, error) {
	if !round.IsValid() {
		return witnessTable{}, fmt.Errorf("%w: %d", types.ErrInvalidAggregationRound, round)
	}
	return witnessTables[round], nil
}

const (
	proverJobColumns = "id, l1_batch_number, circuit_id, aggregation_round, sequence_number, depth, " +
		"is_node_final_proof, " + commonJobColumns
	compressionJobColumns = "l1_batch_number, fri_proof_blob_url, l1_proof_blob_url, " + commonJobColumns
)

func witnessJobsByBatchQuery(table witnessTable) string {
	return fmt.Sprintf("SELECT %s FROM %s WHERE l1_batch_number = ? ORDER BY %s", table.columns, table.name, table.orderBy)
}

func stuckWitnessJobsQuery(table witnessTable) string {
	return fmt.Sprintf(
		"SELECT %s FROM %s WHERE attempts = ? AND status <> '%s' ORDER BY %s",
		table.columns, table.name, successfulStatus, table.orderBy,
	)
}

var (
	proverJobsByBatchQuery = fmt.Sprintf(
		"SELECT %s FROM %s WHERE l1_batch_number = ? AND aggregation_round = ? ORDER BY circuit_id, depth, sequence_number, id",
		proverJobColumns, proverJobsTable,
	)
	stuckProverJobsQuery = fmt.Sprintf(
		"SELECT %s FROM %s WHERE aggregation_round = ? AND attempts = ? AND status <> '%s' "+
			"ORDER BY l1_batch_number, circuit_id, id",
		proverJobColumns, proverJobsTable, successfulStatus,
	)
	compressionJobByBatchQuery = fmt.Sprintf(
		"SELECT %s FROM %s WHERE l1_batch_number = ?", compressionJobColumns, proofCompressionJobsTable,
	)
)

// GetWitnessJobs returns the witness generator jobs of a batch for the given round.
// Basic, recursion tip and scheduler rounds yield at most one job.
func (s *JobRecordStorage) GetWitnessJobs(
	ctx context.Context, batch types.L1BatchNumber, round types.AggregationRound,
) ([]*types.WitnessGeneratorJob, error) {
	table, err := witnessTableOf(round)
	if err != nil {
		return nil, err
	}

	var rows []witnessJobRow
	if err := s.db.WithContext(ctx).Raw(witnessJobsByBatchQuery(table), int64(batch)).Scan(&rows).Error; err != nil {
		s.logger.Error().Err(err).
			Str(logging.FieldTable, table.name).
			Stringer(logging.FieldBatchNumber, batch).
			Msg("failed to fetch witness jobs")
		return nil, fmt.Errorf("failed to fetch witness jobs from %s for batch %d: %w", table.name, batch, err)
	}

	return s.decodeWitnessRows(table.name, round, rows)
}

// GetWitnessInputJob returns the basic witness generator job of a batch or nil.
func (s *JobRecordStorage) GetWitnessInputJob(
	ctx context.Context, batch types.L1BatchNumber,
) (*types.WitnessGeneratorJob, error) {
	return s.getSingleWitnessJob(ctx, batch, types.BasicCircuits)
}

func (s *JobRecordStorage) GetLeafWitnessJobs(
	ctx context.Context, batch types.L1BatchNumber,
) ([]*types.WitnessGeneratorJob, error) {
	return s.GetWitnessJobs(ctx, batch, types.LeafAggregation)
}

func (s *JobRecordStorage) GetNodeWitnessJobs(
	ctx context.Context, batch types.L1BatchNumber,
) ([]*types.WitnessGeneratorJob, error) {
	return s.GetWitnessJobs(ctx, batch, types.NodeAggregation)
}

func (s *JobRecordStorage) GetRecursionTipWitnessJob(
	ctx context.Context, batch types.L1BatchNumber,
) (*types.WitnessGeneratorJob, error) {
	return s.getSingleWitnessJob(ctx, batch, types.RecursionTip)
}

func (s *JobRecordStorage) GetSchedulerWitnessJob(
	ctx context.Context, batch types.L1BatchNumber,
) (*types.WitnessGeneratorJob, error) {
	return s.getSingleWitnessJob(ctx, batch, types.Scheduler)
}

func (s *JobRecordStorage) getSingleWitnessJob(
	ctx context.Context, batch types.L1BatchNumber, round types.AggregationRound,
) (*types.WitnessGeneratorJob, error) {
	jobs, err := s.GetWitnessJobs(ctx, batch, round)
	if err != nil {
		return nil, err
	}
	switch len(jobs) {
	case 0:
		return nil, nil
	case 1:
		return jobs[0], nil
	default:
		return nil, fmt.Errorf("expected at most one %s witness job for batch %d, got %d", round, batch, len(jobs))
	}
}

// GetProverJobs returns the prover jobs of a batch for the given round.
func (s *JobRecordStorage) GetProverJobs(
	ctx context.Context, batch types.L1BatchNumber, round types.AggregationRound,
) ([]*types.ProverJob, error) {
	if !round.IsValid() {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidAggregationRound, round)
	}

	var rows []proverJobRow
	err := s.db.WithContext(ctx).Raw(proverJobsByBatchQuery, int64(batch), int64(round)).Scan(&rows).Error
	if err != nil {
		s.logger.Error().Err(err).
			Stringer(logging.FieldBatchNumber, batch).
			Stringer(logging.FieldAggregationRound, round).
			Msg("failed to fetch prover jobs")
		return nil, fmt.Errorf("failed to fetch %s prover jobs for batch %d: %w", round, batch, err)
	}

	return decodeAll(rows, decodeProverJob)
}

// GetCompressionJob returns the proof compression job of a batch or nil.
func (s *JobRecordStorage) GetCompressionJob(
	ctx context.Context, batch types.L1BatchNumber,
) (*types.CompressionJob, error) {
	var rows []compressionJobRow
	if err := s.db.WithContext(ctx).Raw(compressionJobByBatchQuery, int64(batch)).Scan(&rows).Error; err != nil {
		s.logger.Error().Err(err).Stringer(logging.FieldBatchNumber, batch).Msg("failed to fetch compression job")
		return nil, fmt.Errorf("failed to fetch compression job for batch %d: %w", batch, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return decodeCompressionJob(&rows[0])
}

// GetStuckWitnessJobs returns witness jobs of the round across all batches
// which reached maxAttempts without succeeding.
func (s *JobRecordStorage) GetStuckWitnessJobs(
	ctx context.Context, round types.AggregationRound, maxAttempts uint32,
) ([]*types.WitnessGeneratorJob, error) {
	table, err := witnessTableOf(round)
	if err != nil {
		return nil, err
	}

	var rows []witnessJobRow
	if err := s.db.WithContext(ctx).Raw(stuckWitnessJobsQuery(table), int64(maxAttempts)).Scan(&rows).Error; err != nil {
		s.logger.Error().Err(err).Str(logging.FieldTable, table.name).Msg("failed to fetch stuck witness jobs")
		return nil, fmt.Errorf("failed to fetch stuck witness jobs from %s: %w", table.name, err)
	}

	return s.decodeWitnessRows(table.name, round, rows)
}

// GetStuckProverJobs returns prover jobs of the round across all batches
// which reached maxAttempts without succeeding.
func (s *JobRecordStorage) GetStuckProverJobs(
	ctx context.Context, round types.AggregationRound, maxAttempts uint32,
) ([]*types.ProverJob, error) {
	if !round.IsValid() {
		return nil, fmt.Errorf("%w: %d", types.ErrInvalidAggregationRound, round)
	}

	var rows []proverJobRow
	err := s.db.WithContext(ctx).Raw(stuckProverJobsQuery, int64(round), int64(maxAttempts)).Scan(&rows).Error
	if err != nil {
		s.logger.Error().Err(err).Stringer(logging.FieldAggregationRound, round).Msg("failed to fetch stuck prover jobs")
		return nil, fmt.Errorf("failed to fetch stuck %s prover jobs: %w", round, err)
	}

	return decodeAll(rows, decodeProverJob)
}

func (s *JobRecordStorage) decodeWitnessRows(
	table string, round types.AggregationRound, rows []witnessJobRow,
) ([]*types.WitnessGeneratorJob, error) {
	jobs, err := decodeAll(rows, func(row *witnessJobRow) (*types.WitnessGeneratorJob, error) {
		return decodeWitnessJob(table, round, row)
	})
	if err != nil {
		s.logger.Error().Err(err).Str(logging.FieldTable, table).Msg("failed to decode witness jobs")
		return nil, err
	}
	return jobs, nil
}
