package public

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/NilFoundation/proverctl/services/proverstatus/internal/classifier"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

// CircuitBreakdown holds the jobs of a stage which belong to a single logical circuit.
type CircuitBreakdown struct {
	CircuitId   CircuitId
	CircuitName string
	WitnessJobs []*WitnessGeneratorJob
	ProverJobs  []*ProverJob
}

// ProverJobStatusCount is the number of prover jobs with the given status.
type ProverJobStatusCount struct {
	Status ProverJobStatus
	Count  int
}

// NewCircuitBreakdowns groups jobs by their logical circuit id, ordered by id.
// A circuit id with no known counterpart fails the whole breakdown.
func NewCircuitBreakdowns(witnessJobs []*WitnessGeneratorJob, proverJobs []*ProverJob) ([]*CircuitBreakdown, error) {
	breakdowns := make(map[CircuitId]*CircuitBreakdown)
	getOrAdd := func(id CircuitId) (*CircuitBreakdown, error) {
		if breakdown, ok := breakdowns[id]; ok {
			return breakdown, nil
		}
		name, err := types.CircuitName(id)
		if err != nil {
			return nil, err
		}
		breakdown := &CircuitBreakdown{CircuitId: id, CircuitName: name}
		breakdowns[id] = breakdown
		return breakdown, nil
	}

	for _, job := range witnessJobs {
		id, ok, err := job.LogicalCircuitId()
		if err != nil {
			return nil, fmt.Errorf("witness job of batch %d: %w", job.BatchNumber, err)
		}
		if !ok {
			continue
		}
		breakdown, err := getOrAdd(id)
		if err != nil {
			return nil, err
		}
		breakdown.WitnessJobs = append(breakdown.WitnessJobs, job)
	}

	for _, job := range proverJobs {
		id, err := job.LogicalCircuitId()
		if err != nil {
			return nil, fmt.Errorf("prover job %d: %w", job.Id, err)
		}
		breakdown, err := getOrAdd(id)
		if err != nil {
			return nil, err
		}
		breakdown.ProverJobs = append(breakdown.ProverJobs, job)
	}

	result := make([]*CircuitBreakdown, 0, len(breakdowns))
	for _, breakdown := range breakdowns {
		result = append(result, breakdown)
	}
	slices.SortFunc(result, func(a, b *CircuitBreakdown) int {
		return cmp.Compare(a.CircuitId, b.CircuitId)
	})
	return result, nil
}

func (b *CircuitBreakdown) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.Classify(b.WitnessJobs, maxAttempts)
}

func (b *CircuitBreakdown) ProverJobsStatus(maxAttempts uint32) Status {
	return classifier.Classify(b.ProverJobs, maxAttempts)
}

// ProverJobStatusCounts returns non-zero counts in a stable status order.
func (b *CircuitBreakdown) ProverJobStatusCounts() []ProverJobStatusCount {
	return CountProverJobStatuses(b.ProverJobs)
}

// StuckProverJobs returns prover jobs of the circuit which used up their retry budget.
func (b *CircuitBreakdown) StuckProverJobs(maxAttempts uint32) []*ProverJob {
	return StuckJobs(b.ProverJobs, maxAttempts)
}

// CountProverJobStatuses returns non-zero counts in a stable status order.
func CountProverJobStatuses(jobs []*ProverJob) []ProverJobStatusCount {
	counts := make(map[ProverJobStatus]int)
	for _, job := range jobs {
		counts[job.Status]++
	}

	var result []ProverJobStatusCount
	for _, status := range types.AllProverJobStatuses() {
		if count := counts[status]; count > 0 {
			result = append(result, ProverJobStatusCount{Status: status, Count: count})
		}
	}
	return result
}

// StuckJobs filters jobs which used up their retry budget, preserving order.
func StuckJobs[J Job](jobs []J, maxAttempts uint32) []J {
	var stuck []J
	for _, job := range jobs {
		if IsJobStuck(job, maxAttempts) {
			stuck = append(stuck, job)
		}
	}
	return stuck
}
