package storage

import (
	"database/sql"
	"time"
)

const (
	witnessInputsTable          = "witness_inputs_fri"
	leafAggregationWitnessTable = "leaf_aggregation_witness_jobs_fri"
	nodeAggregationWitnessTable = "node_aggregation_witness_jobs_fri"
	recursionTipWitnessTable    = "recursion_tip_witness_jobs_fri"
	schedulerWitnessTable       = "scheduler_witness_jobs_fri"
	proverJobsTable             = "prover_jobs_fri"
	proofCompressionJobsTable   = "proof_compression_jobs_fri"

	successfulStatus = "successful"
	queuedStatus     = "queued"
)

const commonJobColumns = `status, attempts, error, picked_by, protocol_version, protocol_version_patch,
	created_at, updated_at, processing_started_at, EXTRACT(EPOCH FROM time_taken)::float8 AS time_taken_seconds`

// jobRowCommon holds the columns every job table has.
type jobRowCommon struct {
	Status               string          `gorm:"column:status"`
	Attempts             int64           `gorm:"column:attempts"`
	Error                sql.NullString  `gorm:"column:error"`
	PickedBy             sql.NullString  `gorm:"column:picked_by"`
	ProtocolVersion      sql.NullInt64   `gorm:"column:protocol_version"`
	ProtocolVersionPatch sql.NullInt64   `gorm:"column:protocol_version_patch"`
	CreatedAt            time.Time       `gorm:"column:created_at"`
	UpdatedAt            time.Time       `gorm:"column:updated_at"`
	ProcessingStartedAt  sql.NullTime    `gorm:"column:processing_started_at"`
	TimeTakenSeconds     sql.NullFloat64 `gorm:"column:time_taken_seconds"`
}

// witnessJobRow covers all five witness generator tables, columns absent in a table stay NULL.
type witnessJobRow struct {
	Id            sql.NullInt64 `gorm:"column:id"`
	L1BatchNumber int64         `gorm:"column:l1_batch_number"`
	CircuitId     sql.NullInt64 `gorm:"column:circuit_id"`
	Depth         sql.NullInt64 `gorm:"column:depth"`

	Common jobRowCommon `gorm:"embedded"`
}

type proverJobRow struct {
	Id               int64 `gorm:"column:id"`
	L1BatchNumber    int64 `gorm:"column:l1_batch_number"`
	CircuitId        int64 `gorm:"column:circuit_id"`
	AggregationRound int64 `gorm:"column:aggregation_round"`
	SequenceNumber   int64 `gorm:"column:sequence_number"`
	Depth            int64 `gorm:"column:depth"`
	IsNodeFinalProof bool  `gorm:"column:is_node_final_proof"`

	Common jobRowCommon `gorm:"embedded"`
}

type compressionJobRow struct {
	L1BatchNumber   int64          `gorm:"column:l1_batch_number"`
	FriProofBlobUrl sql.NullString `gorm:"column:fri_proof_blob_url"`
	L1ProofBlobUrl  sql.NullString `gorm:"column:l1_proof_blob_url"`

	Common jobRowCommon `gorm:"embedded"`
}

type batchL1TimestampsRow struct {
	L1BatchNumber int64        `gorm:"column:l1_batch_number"`
	CommittedAt   sql.NullTime `gorm:"column:committed_at"`
	ProvenAt      sql.NullTime `gorm:"column:proven_at"`
}
