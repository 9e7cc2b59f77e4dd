package public

import (
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/classifier"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

type (
	L1BatchNumber           = types.L1BatchNumber
	AggregationRound        = types.AggregationRound
	Stage                   = types.Stage
	CircuitId               = types.CircuitId
	ProtocolSemanticVersion = types.ProtocolSemanticVersion

	JobState             = types.JobState
	WitnessJobStatus     = types.WitnessJobStatus
	ProverJobStatus      = types.ProverJobStatus
	CompressionJobStatus = types.CompressionJobStatus

	Status     = types.Status
	StatusKind = types.StatusKind

	WitnessGeneratorJob = types.WitnessGeneratorJob
	ProverJob           = types.ProverJob
	CompressionJob      = types.CompressionJob
	WitnessInput        = types.WitnessInput
	BatchL1Timestamps   = types.BatchL1Timestamps
	DecodeError         = types.DecodeError

	Job = classifier.Job
)

const DefaultMaxAttempts = types.DefaultMaxAttempts

const (
	StatusKindQueued           = types.StatusKindQueued
	StatusKindInProgress       = types.StatusKindInProgress
	StatusKindSuccessful       = types.StatusKindSuccessful
	StatusKindWaitingForProofs = types.StatusKindWaitingForProofs
	StatusKindStuck            = types.StatusKindStuck
	StatusKindJobsNotFound     = types.StatusKindJobsNotFound
	StatusKindCustom           = types.StatusKindCustom
)

const (
	StageBasicWitnessGenerator = types.StageBasicWitnessGenerator
	StageLeafWitnessGenerator  = types.StageLeafWitnessGenerator
	StageNodeWitnessGenerator  = types.StageNodeWitnessGenerator
	StageRecursionTip          = types.StageRecursionTip
	StageScheduler             = types.StageScheduler
	StageCompressor            = types.StageCompressor
)

const (
	BasicCircuits   = types.BasicCircuits
	LeafAggregation = types.LeafAggregation
	NodeAggregation = types.NodeAggregation
	RecursionTip    = types.RecursionTip
	Scheduler       = types.Scheduler
)

const (
	JobStateQueued           = types.JobStateQueued
	JobStateWaitingForProofs = types.JobStateWaitingForProofs
	JobStateInProgress       = types.JobStateInProgress
	JobStateSuccessful       = types.JobStateSuccessful
	JobStateFailed           = types.JobStateFailed
)

var (
	ErrInvalidCircuitId          = types.ErrInvalidCircuitId
	ErrUnknownStatus             = types.ErrUnknownStatus
	ErrInvalidBatchNumber        = types.ErrInvalidBatchNumber
	ErrInvalidProtocolVersion    = types.ErrInvalidProtocolVersion
	ErrWitnessInputNotFound      = types.ErrWitnessInputNotFound
	ErrWitnessInputAlreadyExists = types.ErrWitnessInputAlreadyExists
	ErrProverJobNotFound         = types.ErrProverJobNotFound
)

func ParseL1BatchNumber(str string) (L1BatchNumber, error) {
	return types.ParseL1BatchNumber(str)
}

func ParseProtocolSemanticVersion(str string) (ProtocolSemanticVersion, error) {
	return types.ParseProtocolSemanticVersion(str)
}

func ParseWitnessJobStatus(str string) (WitnessJobStatus, error) {
	return types.ParseWitnessJobStatus(str)
}

func ParseProverJobStatus(str string) (ProverJobStatus, error) {
	return types.ParseProverJobStatus(str)
}

func ParseCompressionJobStatus(str string) (CompressionJobStatus, error) {
	return types.ParseCompressionJobStatus(str)
}

func CircuitName(id CircuitId) (string, error) {
	return types.CircuitName(id)
}

// StageOf returns the stage that processes the given round.
func StageOf(round AggregationRound) Stage {
	return types.StageOf(round)
}

func AllStages() []Stage {
	return types.AllStages()
}

func AllAggregationRounds() []AggregationRound {
	return types.AllAggregationRounds()
}

func AllProverJobStatuses() []ProverJobStatus {
	return types.AllProverJobStatuses()
}

// IsJobStuck reports whether a single job has used up its retry budget without finishing.
func IsJobStuck(job Job, maxAttempts uint32) bool {
	return types.IsStuck(job.State(), job.AttemptCount(), maxAttempts)
}
