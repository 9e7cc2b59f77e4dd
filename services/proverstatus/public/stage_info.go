package public

import (
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/classifier"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/types"
)

// StageInfo holds the records of a single proving stage of a batch.
// The set of implementations is closed, consumers are expected to switch over all six of them.
type StageInfo interface {
	Stage() Stage

	// WitnessJobsStatus is the status of the stage itself.
	// It is derived from witness generator jobs, or from the compression job for the compressor stage.
	WitnessJobsStatus(maxAttempts uint32) Status

	// ProverJobsStatus rolls up the prover jobs of the stage.
	// The second value is false if the stage has no prover jobs.
	ProverJobsStatus(maxAttempts uint32) (Status, bool)

	sealed()
}

// stageProverJobs is embedded by every stage that has prover jobs.
type stageProverJobs struct {
	ProverJobs []*ProverJob
}

func (s *stageProverJobs) ProverJobsStatus(maxAttempts uint32) (Status, bool) {
	if len(s.ProverJobs) == 0 {
		return types.StatusJobsNotFound, false
	}
	return classifier.Classify(s.ProverJobs, maxAttempts), true
}

type BasicWitnessGeneratorInfo struct {
	WitnessJob *WitnessGeneratorJob
	stageProverJobs
}

func NewBasicWitnessGeneratorInfo(witnessJob *WitnessGeneratorJob, proverJobs []*ProverJob) *BasicWitnessGeneratorInfo {
	return &BasicWitnessGeneratorInfo{
		WitnessJob:      witnessJob,
		stageProverJobs: stageProverJobs{ProverJobs: proverJobs},
	}
}

func (*BasicWitnessGeneratorInfo) Stage() Stage {
	return types.StageBasicWitnessGenerator
}

func (i *BasicWitnessGeneratorInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.ClassifySingle(i.WitnessJob, i.WitnessJob != nil, maxAttempts)
}

// Circuits groups prover jobs by circuit; basic witness generation has a single job for all circuits.
func (i *BasicWitnessGeneratorInfo) Circuits() ([]*CircuitBreakdown, error) {
	return NewCircuitBreakdowns(nil, i.ProverJobs)
}

func (*BasicWitnessGeneratorInfo) sealed() {}

type LeafWitnessGeneratorInfo struct {
	WitnessJobs []*WitnessGeneratorJob
	stageProverJobs
}

func NewLeafWitnessGeneratorInfo(witnessJobs []*WitnessGeneratorJob, proverJobs []*ProverJob) *LeafWitnessGeneratorInfo {
	return &LeafWitnessGeneratorInfo{
		WitnessJobs:     witnessJobs,
		stageProverJobs: stageProverJobs{ProverJobs: proverJobs},
	}
}

func (*LeafWitnessGeneratorInfo) Stage() Stage {
	return types.StageLeafWitnessGenerator
}

func (i *LeafWitnessGeneratorInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.Classify(i.WitnessJobs, maxAttempts)
}

func (i *LeafWitnessGeneratorInfo) Circuits() ([]*CircuitBreakdown, error) {
	return NewCircuitBreakdowns(i.WitnessJobs, i.ProverJobs)
}

func (*LeafWitnessGeneratorInfo) sealed() {}

type NodeWitnessGeneratorInfo struct {
	WitnessJobs []*WitnessGeneratorJob
	stageProverJobs
}

func NewNodeWitnessGeneratorInfo(witnessJobs []*WitnessGeneratorJob, proverJobs []*ProverJob) *NodeWitnessGeneratorInfo {
	return &NodeWitnessGeneratorInfo{
		WitnessJobs:     witnessJobs,
		stageProverJobs: stageProverJobs{ProverJobs: proverJobs},
	}
}

func (*NodeWitnessGeneratorInfo) Stage() Stage {
	return types.StageNodeWitnessGenerator
}

func (i *NodeWitnessGeneratorInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.Classify(i.WitnessJobs, maxAttempts)
}

func (i *NodeWitnessGeneratorInfo) Circuits() ([]*CircuitBreakdown, error) {
	return NewCircuitBreakdowns(i.WitnessJobs, i.ProverJobs)
}

func (*NodeWitnessGeneratorInfo) sealed() {}

type RecursionTipInfo struct {
	WitnessJob *WitnessGeneratorJob
	stageProverJobs
}

func NewRecursionTipInfo(witnessJob *WitnessGeneratorJob, proverJobs []*ProverJob) *RecursionTipInfo {
	return &RecursionTipInfo{
		WitnessJob:      witnessJob,
		stageProverJobs: stageProverJobs{ProverJobs: proverJobs},
	}
}

func (*RecursionTipInfo) Stage() Stage {
	return types.StageRecursionTip
}

func (i *RecursionTipInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.ClassifySingle(i.WitnessJob, i.WitnessJob != nil, maxAttempts)
}

func (*RecursionTipInfo) sealed() {}

type SchedulerInfo struct {
	WitnessJob *WitnessGeneratorJob
	stageProverJobs
}

func NewSchedulerInfo(witnessJob *WitnessGeneratorJob, proverJobs []*ProverJob) *SchedulerInfo {
	return &SchedulerInfo{
		WitnessJob:      witnessJob,
		stageProverJobs: stageProverJobs{ProverJobs: proverJobs},
	}
}

func (*SchedulerInfo) Stage() Stage {
	return types.StageScheduler
}

func (i *SchedulerInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.ClassifySingle(i.WitnessJob, i.WitnessJob != nil, maxAttempts)
}

func (*SchedulerInfo) sealed() {}

type CompressorInfo struct {
	Job *CompressionJob
}

func NewCompressorInfo(job *CompressionJob) *CompressorInfo {
	return &CompressorInfo{Job: job}
}

func (*CompressorInfo) Stage() Stage {
	return types.StageCompressor
}

func (i *CompressorInfo) WitnessJobsStatus(maxAttempts uint32) Status {
	return classifier.ClassifyCompression(i.Job, maxAttempts)
}

func (*CompressorInfo) ProverJobsStatus(uint32) (Status, bool) {
	return types.StatusJobsNotFound, false
}

// IsSentToServer reports whether the final proof has already been delivered.
func (i *CompressorInfo) IsSentToServer() bool {
	return i.Job != nil && i.Job.Status == types.CompressionJobSentToServer
}

func (*CompressorInfo) sealed() {}

// BatchData is a snapshot of all six proving stages of a batch.
type BatchData struct {
	BatchNumber           L1BatchNumber
	BasicWitnessGenerator *BasicWitnessGeneratorInfo
	LeafWitnessGenerator  *LeafWitnessGeneratorInfo
	NodeWitnessGenerator  *NodeWitnessGeneratorInfo
	RecursionTip          *RecursionTipInfo
	Scheduler             *SchedulerInfo
	Compressor            *CompressorInfo
}

// NewEmptyBatchData returns batch data in which every stage has no jobs.
func NewEmptyBatchData(batchNumber L1BatchNumber) *BatchData {
	return &BatchData{
		BatchNumber:           batchNumber,
		BasicWitnessGenerator: NewBasicWitnessGeneratorInfo(nil, nil),
		LeafWitnessGenerator:  NewLeafWitnessGeneratorInfo(nil, nil),
		NodeWitnessGenerator:  NewNodeWitnessGeneratorInfo(nil, nil),
		RecursionTip:          NewRecursionTipInfo(nil, nil),
		Scheduler:             NewSchedulerInfo(nil, nil),
		Compressor:            NewCompressorInfo(nil),
	}
}

// Stages returns stage infos in execution order.
func (d *BatchData) Stages() []StageInfo {
	return []StageInfo{
		d.BasicWitnessGenerator,
		d.LeafWitnessGenerator,
		d.NodeWitnessGenerator,
		d.RecursionTip,
		d.Scheduler,
		d.Compressor,
	}
}

func (d *BatchData) StageInfo(stage Stage) StageInfo {
	switch stage {
	case types.StageBasicWitnessGenerator:
		return d.BasicWitnessGenerator
	case types.StageLeafWitnessGenerator:
		return d.LeafWitnessGenerator
	case types.StageNodeWitnessGenerator:
		return d.NodeWitnessGenerator
	case types.StageRecursionTip:
		return d.RecursionTip
	case types.StageScheduler:
		return d.Scheduler
	case types.StageCompressor:
		return d.Compressor
	default:
		return nil
	}
}
