package public

import "slices"

// StuckRoundJobs lists jobs of a single aggregation round which reached the retry limit.
type StuckRoundJobs struct {
	Round AggregationRound
	// WitnessBatches are sorted distinct numbers of batches with stuck witness generator jobs.
	WitnessBatches []L1BatchNumber
	ProverJobs     []*ProverJob
}

func NewStuckRoundJobs(
	round AggregationRound,
	witnessJobs []*WitnessGeneratorJob,
	proverJobs []*ProverJob,
) *StuckRoundJobs {
	batches := make([]L1BatchNumber, 0, len(witnessJobs))
	for _, job := range witnessJobs {
		batches = append(batches, job.BatchNumber)
	}
	slices.Sort(batches)

	return &StuckRoundJobs{
		Round:          round,
		WitnessBatches: slices.Compact(batches),
		ProverJobs:     proverJobs,
	}
}

func (r *StuckRoundJobs) IsEmpty() bool {
	return len(r.WitnessBatches) == 0 && len(r.ProverJobs) == 0
}

// ProverBatches returns sorted distinct numbers of batches with stuck prover jobs.
func (r *StuckRoundJobs) ProverBatches() []L1BatchNumber {
	batches := make([]L1BatchNumber, 0, len(r.ProverJobs))
	for _, job := range r.ProverJobs {
		batches = append(batches, job.BatchNumber)
	}
	slices.Sort(batches)
	return slices.Compact(batches)
}

// StuckJobsReport is the result of a fleet wide scan, it always has an entry for every round.
type StuckJobsReport struct {
	MaxAttempts uint32
	Rounds      []*StuckRoundJobs
}

func (r *StuckJobsReport) HasStuckJobs() bool {
	for _, round := range r.Rounds {
		if !round.IsEmpty() {
			return true
		}
	}
	return false
}
