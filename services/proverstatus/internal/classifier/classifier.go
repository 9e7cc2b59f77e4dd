package classifier

import (
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

// Job is a single persisted job record, whatever table and status vocabulary it comes from.
type Job interface {
	State() types.JobState
	AttemptCount() uint32
}

// SentToServerMessage is rendered once the compressed proof has been delivered.
const SentToServerMessage = "Sent to server 📤"

// Classify derives the status of a collection of jobs. Rules are evaluated in order, the first match wins:
//  1. no jobs: JobsNotFound;
//  2. any failed or running job with attempts >= maxAttempts: Stuck;
//  3. all jobs wait for proofs: WaitingForProofs;
//  4. all jobs are queued or wait for proofs: Queued;
//  5. all jobs are successful: Successful;
//  6. otherwise: InProgress.
func Classify[J Job](jobs []J, maxAttempts uint32) types.Status {
	if len(jobs) == 0 {
		return types.StatusJobsNotFound
	}

	allWaitingForProofs := true
	allPending := true
	allSuccessful := true

	for _, job := range jobs {
		state := job.State()
		if types.IsStuck(state, job.AttemptCount(), maxAttempts) {
			return types.StatusStuck
		}

		allWaitingForProofs = allWaitingForProofs && state == types.JobStateWaitingForProofs
		allPending = allPending && (state == types.JobStateQueued || state == types.JobStateWaitingForProofs)
		allSuccessful = allSuccessful && state == types.JobStateSuccessful
	}

	switch {
	case allWaitingForProofs:
		return types.StatusWaitingForProofs
	case allPending:
		return types.StatusQueued
	case allSuccessful:
		return types.StatusSuccessful
	default:
		return types.StatusInProgress
	}
}

// ClassifySingle is Classify for stages with at most one job per batch.
func ClassifySingle[J Job](job J, present bool, maxAttempts uint32) types.Status {
	if !present {
		return types.StatusJobsNotFound
	}
	return Classify([]J{job}, maxAttempts)
}

// ClassifyCompression bypasses the generic rules once the proof has been sent to the server.
func ClassifyCompression(job *types.CompressionJob, maxAttempts uint32) types.Status {
	if job == nil {
		return types.StatusJobsNotFound
	}
	if job.Status == types.CompressionJobSentToServer {
		return types.CustomStatus(SentToServerMessage)
	}
	return Classify([]*types.CompressionJob{job}, maxAttempts)
}
