package types

import "time"

// JobTimestamps are the bookkeeping times shared by every job table.
type JobTimestamps struct {
	CreatedAt           time.Time
	UpdatedAt           time.Time
	ProcessingStartedAt *time.Time
	TimeTaken           *time.Duration
}

// WitnessGeneratorJob is a witness generation work item of a single aggregation round.
// Basic, recursion tip and scheduler rounds have one job per batch,
// leaf and node rounds have one job per circuit (and per depth for node jobs).
type WitnessGeneratorJob struct {
	Id               *uint32
	BatchNumber      L1BatchNumber
	AggregationRound AggregationRound
	// RawCircuitId is the persisted circuit id, see LogicalCircuitId for the corrected one.
	RawCircuitId *uint8
	Depth        *uint32

	Status   WitnessJobStatus
	Attempts uint32
	Error    *string
	PickedBy *string

	ProtocolVersion *ProtocolSemanticVersion
	JobTimestamps
}

func (j *WitnessGeneratorJob) State() JobState {
	return j.Status.JobState()
}

func (j *WitnessGeneratorJob) AttemptCount() uint32 {
	return j.Attempts
}

// LogicalCircuitId applies the circuit id correction of the job's round.
// The second value is false for jobs of rounds without per-circuit records.
func (j *WitnessGeneratorJob) LogicalCircuitId() (CircuitId, bool, error) {
	if j.RawCircuitId == nil {
		return 0, false, nil
	}
	id, err := CorrectCircuitId(j.AggregationRound, *j.RawCircuitId)
	return id, true, err
}

// ProverJob is a single proving task, there are many of them per circuit and round of a batch.
type ProverJob struct {
	Id               uint32
	BatchNumber      L1BatchNumber
	RawCircuitId     uint8
	AggregationRound AggregationRound
	SequenceNumber   uint32
	Depth            uint32
	IsNodeFinalProof bool

	Status   ProverJobStatus
	Attempts uint32
	Error    *string
	PickedBy *string

	ProtocolVersion *ProtocolSemanticVersion
	JobTimestamps
}

func (j *ProverJob) State() JobState {
	return j.Status.JobState()
}

func (j *ProverJob) AttemptCount() uint32 {
	return j.Attempts
}

func (j *ProverJob) LogicalCircuitId() (CircuitId, error) {
	return CorrectCircuitId(j.AggregationRound, j.RawCircuitId)
}

// CompressionJob wraps the final proof into the form submitted to L1.
type CompressionJob struct {
	BatchNumber L1BatchNumber

	Status   CompressionJobStatus
	Attempts uint32
	Error    *string
	PickedBy *string

	FriProofBlobUrl *string
	L1ProofBlobUrl  *string

	ProtocolVersion *ProtocolSemanticVersion
	JobTimestamps
}

func (j *CompressionJob) State() JobState {
	return j.Status.JobState()
}

func (j *CompressionJob) AttemptCount() uint32 {
	return j.Attempts
}

// IsStuck reports whether a job has used up its retry budget without finishing.
func IsStuck(state JobState, attempts, maxAttempts uint32) bool {
	return (state == JobStateFailed || state == JobStateInProgress) && attempts >= maxAttempts
}

// WitnessInput is the data required to enqueue basic witness generation for a batch.
type WitnessInput struct {
	BatchNumber     L1BatchNumber
	BlobUrl         string
	ProtocolVersion ProtocolSemanticVersion
}
