package storage

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// downstreamTables hold the artifacts derived from the witness input of a batch.
var downstreamTables = []string{
	leafAggregationWitnessTable,
	nodeAggregationWitnessTable,
	recursionTipWitnessTable,
	schedulerWitnessTable,
	proverJobsTable,
	proofCompressionJobsTable,
}

// RestartBatch drops every job derived from the batch witness input and requeues the input itself,
// so that proving of the batch starts over. Changes are committed before the method returns.
func (s *JobRecordStorage) RestartBatch(ctx context.Context, batch types.L1BatchNumber) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		requeue := tx.Exec(
			fmt.Sprintf(
				"UPDATE %s SET status = ?, attempts = 0, error = NULL, picked_by = NULL, "+
					"processing_started_at = NULL, updated_at = NOW() WHERE l1_batch_number = ?",
				witnessInputsTable,
			),
			queuedStatus, int64(batch),
		)
		if requeue.Error != nil {
			return fmt.Errorf("failed to requeue witness input: %w", requeue.Error)
		}
		if requeue.RowsAffected == 0 {
			return fmt.Errorf("%w: batch %d", types.ErrWitnessInputNotFound, batch)
		}

		for _, table := range downstreamTables {
			deleted := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE l1_batch_number = ?", table), int64(batch))
			if deleted.Error != nil {
				return fmt.Errorf("failed to delete jobs from %s: %w", table, deleted.Error)
			}
			s.logger.Debug().
				Str(logging.FieldTable, table).
				Stringer(logging.FieldBatchNumber, batch).
				Int64("deleted", deleted.RowsAffected).
				Msg("batch jobs deleted")
		}
		return nil
	})
	if err != nil {
		s.logger.Error().Err(err).Stringer(logging.FieldBatchNumber, batch).Msg("failed to restart batch")
		return err
	}

	s.logger.Info().Stringer(logging.FieldBatchNumber, batch).Msg("batch proof restarted")
	return nil
}

// completedProverStatuses are the prover job statuses which resolve to the successful state.
var completedProverStatuses = pq.StringArray{
	types.ProverJobSuccessful.String(),
	types.ProverJobSkipped.String(),
	types.ProverJobIgnored.String(),
}

// RestartProverJob requeues a single prover job unless it has already completed.
func (s *JobRecordStorage) RestartProverJob(ctx context.Context, id uint32) error {
	result := s.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			"UPDATE %s SET status = ?, attempts = 0, error = NULL, picked_by = NULL, "+
				"processing_started_at = NULL, updated_at = NOW() WHERE id = ? AND NOT (status = ANY(?))",
			proverJobsTable,
		),
		queuedStatus, int64(id), completedProverStatuses,
	)
	if result.Error != nil {
		s.logger.Error().Err(result.Error).Uint32(logging.FieldProverJobId, id).Msg("failed to restart prover job")
		return fmt.Errorf("failed to restart prover job %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no restartable prover job with id %d", types.ErrProverJobNotFound, id)
	}

	s.logger.Info().Uint32(logging.FieldProverJobId, id).Msg("prover job restarted")
	return nil
}

// InsertWitnessInput enqueues basic witness generation for a batch which has no witness input yet.
func (s *JobRecordStorage) InsertWitnessInput(ctx context.Context, input types.WitnessInput) error {
	result := s.db.WithContext(ctx).Exec(
		fmt.Sprintf(
			"INSERT INTO %s (l1_batch_number, witness_inputs_blob_url, protocol_version, protocol_version_patch, "+
				"status, attempts, created_at, updated_at) VALUES (?, ?, ?, ?, ?, 0, NOW(), NOW()) "+
				"ON CONFLICT (l1_batch_number) DO NOTHING",
			witnessInputsTable,
		),
		int64(input.BatchNumber),
		input.BlobUrl,
		int64(input.ProtocolVersion.Minor),
		int64(input.ProtocolVersion.Patch),
		queuedStatus,
	)
	if result.Error != nil {
		s.logger.Error().Err(result.Error).
			Stringer(logging.FieldBatchNumber, input.BatchNumber).
			Msg("failed to insert witness input")
		return fmt.Errorf("failed to insert witness input for batch %d: %w", input.BatchNumber, result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: batch %d", types.ErrWitnessInputAlreadyExists, input.BatchNumber)
	}

	s.logger.Info().
		Stringer(logging.FieldBatchNumber, input.BatchNumber).
		Stringer("protocolVersion", input.ProtocolVersion).
		Msg("witness input inserted")
	return nil
}
