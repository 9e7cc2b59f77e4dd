package types

import "fmt"

// JobState is the vocabulary-independent state of a single job record.
// Every persisted status vocabulary is reduced to it before classification.
type JobState uint8

const (
	JobStateQueued JobState = iota
	JobStateWaitingForProofs
	JobStateInProgress
	JobStateSuccessful
	JobStateFailed
)

func (s JobState) String() string {
	switch s {
	case JobStateQueued:
		return "Queued"
	case JobStateWaitingForProofs:
		return "WaitingForProofs"
	case JobStateInProgress:
		return "InProgress"
	case JobStateSuccessful:
		return "Successful"
	case JobStateFailed:
		return "Failed"
	default:
		return fmt.Sprintf("JobState(%d)", uint8(s))
	}
}

// statusVocabulary binds enum values to their persisted string form.
type statusVocabulary[S ~uint8] struct {
	name     string
	dbValues []string
}

func (v statusVocabulary[S]) parse(str string) (S, error) {
	for i, dbValue := range v.dbValues {
		if dbValue == str {
			return S(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownStatus, v.name, str)
}

func (v statusVocabulary[S]) format(status S) string {
	if int(status) >= len(v.dbValues) {
		return fmt.Sprintf("%s(%d)", v.name, uint8(status))
	}
	return v.dbValues[status]
}

// WitnessJobStatus is the status vocabulary of witness generator jobs.
type WitnessJobStatus uint8

const (
	WitnessJobQueued WitnessJobStatus = iota
	WitnessJobInProgress
	WitnessJobSuccessful
	WitnessJobFailed
	WitnessJobWaitingForArtifacts
	WitnessJobSkipped
	WitnessJobWaitingForProofs
)

var witnessJobStatuses = statusVocabulary[WitnessJobStatus]{
	name: "WitnessJobStatus",
	dbValues: []string{
		WitnessJobQueued:              "queued",
		WitnessJobInProgress:          "in_progress",
		WitnessJobSuccessful:          "successful",
		WitnessJobFailed:              "failed",
		WitnessJobWaitingForArtifacts: "waiting_for_artifacts",
		WitnessJobSkipped:             "skipped",
		WitnessJobWaitingForProofs:    "waiting_for_proofs",
	},
}

func ParseWitnessJobStatus(str string) (WitnessJobStatus, error) {
	return witnessJobStatuses.parse(str)
}

func (s WitnessJobStatus) String() string {
	return witnessJobStatuses.format(s)
}

// JobState keeps Failed distinct from InProgress, a failed job that still has attempts left
// ends up as InProgress only at the stage level.
func (s WitnessJobStatus) JobState() JobState {
	switch s {
	case WitnessJobQueued, WitnessJobWaitingForArtifacts:
		return JobStateQueued
	case WitnessJobWaitingForProofs:
		return JobStateWaitingForProofs
	case WitnessJobInProgress:
		return JobStateInProgress
	case WitnessJobSuccessful, WitnessJobSkipped:
		return JobStateSuccessful
	default:
		return JobStateFailed
	}
}

// ProverJobStatus is the status vocabulary of prover jobs.
type ProverJobStatus uint8

const (
	ProverJobQueued ProverJobStatus = iota
	ProverJobInProgress
	ProverJobSuccessful
	ProverJobFailed
	ProverJobSkipped
	ProverJobIgnored
	ProverJobInGPUProof
)

var proverJobStatuses = statusVocabulary[ProverJobStatus]{
	name: "ProverJobStatus",
	dbValues: []string{
		ProverJobQueued:     "queued",
		ProverJobInProgress: "in_progress",
		ProverJobSuccessful: "successful",
		ProverJobFailed:     "failed",
		ProverJobSkipped:    "skipped",
		ProverJobIgnored:    "ignored",
		ProverJobInGPUProof: "in_gpu_proof",
	},
}

func ParseProverJobStatus(str string) (ProverJobStatus, error) {
	return proverJobStatuses.parse(str)
}

func (s ProverJobStatus) String() string {
	return proverJobStatuses.format(s)
}

func AllProverJobStatuses() []ProverJobStatus {
	return []ProverJobStatus{
		ProverJobQueued,
		ProverJobInProgress,
		ProverJobInGPUProof,
		ProverJobSuccessful,
		ProverJobFailed,
		ProverJobSkipped,
		ProverJobIgnored,
	}
}

func (s ProverJobStatus) JobState() JobState {
	switch s {
	case ProverJobQueued:
		return JobStateQueued
	case ProverJobInProgress, ProverJobInGPUProof:
		return JobStateInProgress
	case ProverJobSuccessful, ProverJobSkipped, ProverJobIgnored:
		return JobStateSuccessful
	default:
		return JobStateFailed
	}
}

// CompressionJobStatus is the status vocabulary of proof compression jobs.
type CompressionJobStatus uint8

const (
	CompressionJobQueued CompressionJobStatus = iota
	CompressionJobInProgress
	CompressionJobSuccessful
	CompressionJobFailed
	CompressionJobSentToServer
	CompressionJobSkipped
)

var compressionJobStatuses = statusVocabulary[CompressionJobStatus]{
	name: "CompressionJobStatus",
	dbValues: []string{
		CompressionJobQueued:       "queued",
		CompressionJobInProgress:   "in_progress",
		CompressionJobSuccessful:   "successful",
		CompressionJobFailed:       "failed",
		CompressionJobSentToServer: "sent_to_server",
		CompressionJobSkipped:      "skipped",
	},
}

func ParseCompressionJobStatus(str string) (CompressionJobStatus, error) {
	return compressionJobStatuses.parse(str)
}

func (s CompressionJobStatus) String() string {
	return compressionJobStatuses.format(s)
}

func (s CompressionJobStatus) JobState() JobState {
	switch s {
	case CompressionJobQueued:
		return JobStateQueued
	case CompressionJobInProgress:
		return JobStateInProgress
	case CompressionJobSuccessful, CompressionJobSentToServer, CompressionJobSkipped:
		return JobStateSuccessful
	default:
		return JobStateFailed
	}
}
