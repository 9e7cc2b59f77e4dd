package storage

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const batchesL1TimestampsQuery = `SELECT
	l1_batches.number AS l1_batch_number,
	commit_tx.confirmed_at AS committed_at,
	prove_tx.confirmed_at AS proven_at
FROM l1_batches
LEFT JOIN eth_txs_history AS commit_tx
	ON l1_batches.eth_commit_tx_id = commit_tx.eth_tx_id AND commit_tx.confirmed_at IS NOT NULL
LEFT JOIN eth_txs_history AS prove_tx
	ON l1_batches.eth_prove_tx_id = prove_tx.eth_tx_id AND prove_tx.confirmed_at IS NOT NULL
WHERE l1_batches.number = ANY(?)
ORDER BY l1_batches.number`

// BatchL1Storage reads batch settlement data from the core database.
type BatchL1Storage struct {
	db     *gorm.DB
	logger logging.Logger
}

func NewBatchL1Storage(db *gorm.DB, logger logging.Logger) *BatchL1Storage {
	return &BatchL1Storage{
		db:     db,
		logger: logger,
	}
}

// GetBatchesL1Timestamps returns commit and prove confirmation times for the requested batches.
// Batches unknown to the core database are absent from the result.
func (s *BatchL1Storage) GetBatchesL1Timestamps(
	ctx context.Context, batches []types.L1BatchNumber,
) ([]*types.BatchL1Timestamps, error) {
	if len(batches) == 0 {
		return nil, nil
	}

	numbers := make(pq.Int64Array, 0, len(batches))
	for _, batch := range batches {
		numbers = append(numbers, int64(batch))
	}

	var rows []batchL1TimestampsRow
	if err := s.db.WithContext(ctx).Raw(batchesL1TimestampsQuery, numbers).Scan(&rows).Error; err != nil {
		s.logger.Error().Err(err).Int("batchesCount", len(batches)).Msg("failed to fetch batch L1 timestamps")
		return nil, fmt.Errorf("failed to fetch L1 timestamps of %d batches: %w", len(batches), err)
	}

	return decodeAll(rows, decodeBatchL1Timestamps)
}
