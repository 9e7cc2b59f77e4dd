package storage

import (
	"database/sql"
	"errors"
	"math"
	"time"

	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

// Every decoder is all-or-nothing: the first malformed column aborts the whole row.

func decodeUint32(table, column string, value int64) (uint32, error) {
	if value < 0 || value > math.MaxUint32 {
		return 0, types.NewDecodeError(table, column, value, errors.New("value is out of uint32 range"))
	}
	return uint32(value), nil
}

func decodeUint8(table, column string, value int64) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, types.NewDecodeError(table, column, value, types.ErrInvalidCircuitId)
	}
	return uint8(value), nil
}

func decodeBatchNumber(table string, value int64) (types.L1BatchNumber, error) {
	number, err := decodeUint32(table, "l1_batch_number", value)
	return types.L1BatchNumber(number), err
}

func nullableString(value sql.NullString) *string {
	if !value.Valid {
		return nil
	}
	return &value.String
}

func nullableTime(value sql.NullTime) *time.Time {
	if !value.Valid {
		return nil
	}
	return &value.Time
}

// decodeCommon decodes the shared columns; status is vocabulary specific and is decoded by the caller.
func decodeCommon(table string, row *jobRowCommon) (
	attempts uint32,
	protocolVersion *types.ProtocolSemanticVersion,
	timestamps types.JobTimestamps,
	err error,
) {
	attempts, err = decodeUint32(table, "attempts", row.Attempts)
	if err != nil {
		return
	}

	if row.ProtocolVersion.Valid {
		var patch int64
		if row.ProtocolVersionPatch.Valid {
			patch = row.ProtocolVersionPatch.Int64
		}
		version, versionErr := types.NewProtocolSemanticVersion(row.ProtocolVersion.Int64, patch)
		if versionErr != nil {
			err = types.NewDecodeError(table, "protocol_version", row.ProtocolVersion.Int64, versionErr)
			return
		}
		protocolVersion = &version
	}

	timestamps = types.JobTimestamps{
		CreatedAt:           row.CreatedAt,
		UpdatedAt:           row.UpdatedAt,
		ProcessingStartedAt: nullableTime(row.ProcessingStartedAt),
	}
	if row.TimeTakenSeconds.Valid {
		if row.TimeTakenSeconds.Float64 < 0 || math.IsNaN(row.TimeTakenSeconds.Float64) {
			err = types.NewDecodeError(table, "time_taken", row.TimeTakenSeconds.Float64, errors.New("invalid duration"))
			return
		}
		timeTaken := time.Duration(row.TimeTakenSeconds.Float64 * float64(time.Second))
		timestamps.TimeTaken = &timeTaken
	}
	return
}

func decodeWitnessJob(table string, round types.AggregationRound, row *witnessJobRow) (*types.WitnessGeneratorJob, error) {
	batchNumber, err := decodeBatchNumber(table, row.L1BatchNumber)
	if err != nil {
		return nil, err
	}

	status, err := types.ParseWitnessJobStatus(row.Common.Status)
	if err != nil {
		return nil, types.NewDecodeError(table, "status", row.Common.Status, err)
	}

	attempts, protocolVersion, timestamps, err := decodeCommon(table, &row.Common)
	if err != nil {
		return nil, err
	}

	job := &types.WitnessGeneratorJob{
		BatchNumber:      batchNumber,
		AggregationRound: round,
		Status:           status,
		Attempts:         attempts,
		Error:            nullableString(row.Common.Error),
		PickedBy:         nullableString(row.Common.PickedBy),
		ProtocolVersion:  protocolVersion,
		JobTimestamps:    timestamps,
	}

	if row.Id.Valid {
		id, err := decodeUint32(table, "id", row.Id.Int64)
		if err != nil {
			return nil, err
		}
		job.Id = &id
	}
	if row.CircuitId.Valid {
		circuitId, err := decodeUint8(table, "circuit_id", row.CircuitId.Int64)
		if err != nil {
			return nil, err
		}
		job.RawCircuitId = &circuitId
	}
	if row.Depth.Valid {
		depth, err := decodeUint32(table, "depth", row.Depth.Int64)
		if err != nil {
			return nil, err
		}
		job.Depth = &depth
	}

	return job, nil
}

func decodeProverJob(row *proverJobRow) (*types.ProverJob, error) {
	const table = proverJobsTable

	id, err := decodeUint32(table, "id", row.Id)
	if err != nil {
		return nil, err
	}
	batchNumber, err := decodeBatchNumber(table, row.L1BatchNumber)
	if err != nil {
		return nil, err
	}
	circuitId, err := decodeUint8(table, "circuit_id", row.CircuitId)
	if err != nil {
		return nil, err
	}
	round, err := types.AggregationRoundFromInt(row.AggregationRound)
	if err != nil {
		return nil, types.NewDecodeError(table, "aggregation_round", row.AggregationRound, err)
	}
	sequenceNumber, err := decodeUint32(table, "sequence_number", row.SequenceNumber)
	if err != nil {
		return nil, err
	}
	depth, err := decodeUint32(table, "depth", row.Depth)
	if err != nil {
		return nil, err
	}
	status, err := types.ParseProverJobStatus(row.Common.Status)
	if err != nil {
		return nil, types.NewDecodeError(table, "status", row.Common.Status, err)
	}
	attempts, protocolVersion, timestamps, err := decodeCommon(table, &row.Common)
	if err != nil {
		return nil, err
	}

	return &types.ProverJob{
		Id:               id,
		BatchNumber:      batchNumber,
		RawCircuitId:     circuitId,
		AggregationRound: round,
		SequenceNumber:   sequenceNumber,
		Depth:            depth,
		IsNodeFinalProof: row.IsNodeFinalProof,
		Status:           status,
		Attempts:         attempts,
		Error:            nullableString(row.Common.Error),
		PickedBy:         nullableString(row.Common.PickedBy),
		ProtocolVersion:  protocolVersion,
		JobTimestamps:    timestamps,
	}, nil
}

func decodeCompressionJob(row *compressionJobRow) (*types.CompressionJob, error) {
	const table = proofCompressionJobsTable

	batchNumber, err := decodeBatchNumber(table, row.L1BatchNumber)
	if err != nil {
		return nil, err
	}
	status, err := types.ParseCompressionJobStatus(row.Common.Status)
	if err != nil {
		return nil, types.NewDecodeError(table, "status", row.Common.Status, err)
	}
	attempts, protocolVersion, timestamps, err := decodeCommon(table, &row.Common)
	if err != nil {
		return nil, err
	}

	return &types.CompressionJob{
		BatchNumber:     batchNumber,
		Status:          status,
		Attempts:        attempts,
		Error:           nullableString(row.Common.Error),
		PickedBy:        nullableString(row.Common.PickedBy),
		FriProofBlobUrl: nullableString(row.FriProofBlobUrl),
		L1ProofBlobUrl:  nullableString(row.L1ProofBlobUrl),
		ProtocolVersion: protocolVersion,
		JobTimestamps:   timestamps,
	}, nil
}

func decodeBatchL1Timestamps(row *batchL1TimestampsRow) (*types.BatchL1Timestamps, error) {
	batchNumber, err := decodeUint32("l1_batches", "number", row.L1BatchNumber)
	if err != nil {
		return nil, err
	}
	return &types.BatchL1Timestamps{
		BatchNumber: types.L1BatchNumber(batchNumber),
		CommittedAt: nullableTime(row.CommittedAt),
		ProvenAt:    nullableTime(row.ProvenAt),
	}, nil
}

// decodeAll converts rows in order and fails on the first bad one.
func decodeAll[R any, T any](rows []R, decode func(*R) (T, error)) ([]T, error) {
	result := make([]T, 0, len(rows))
	for i := range rows {
		decoded, err := decode(&rows[i])
		if err != nil {
			return nil, err
		}
		result = append(result, decoded)
	}
	return result, nil
}
