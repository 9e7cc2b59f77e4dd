package report

import (
	"fmt"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/output"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

const ProofSentToServerLine = "> Proof sent to server ✅"

type Params struct {
	MaxAttempts uint32
	Stages      public.StageMask
	Verbose     bool
}

func DefaultParams() Params {
	return Params{
		MaxAttempts: public.DefaultMaxAttempts,
		Stages:      public.AllStagesMask(),
		Verbose:     false,
	}
}

type BatchRenderer struct {
	params Params
}

func NewBatchRenderer(params Params) *BatchRenderer {
	params.Stages = params.Stages.OrAll()
	return &BatchRenderer{params: params}
}

// Render formats a single batch. A batch whose proof has already been sent to the server
// is reported with a single line regardless of the selected stages.
func (r *BatchRenderer) Render(data *public.BatchData) (string, error) {
	var builder output.Builder
	builder.WriteLine(output.BoldStr("== Batch %d Status ==", data.BatchNumber))

	if data.Compressor.IsSentToServer() {
		builder.WriteLine(ProofSentToServerLine)
		return builder.String(), nil
	}

	for _, stageInfo := range data.Stages() {
		if !r.params.Stages.Has(stageInfo.Stage()) {
			continue
		}
		if err := r.renderStage(&builder, stageInfo); err != nil {
			return "", fmt.Errorf("failed to render %s of batch %d: %w", stageInfo.Stage(), data.BatchNumber, err)
		}
	}

	return builder.String(), nil
}

func (r *BatchRenderer) renderStage(builder *output.Builder, stageInfo public.StageInfo) error {
	builder.WriteLinef(0, "-- %s: %s", stageInfo.Stage(), statusStr(stageInfo.WitnessJobsStatus(r.params.MaxAttempts)))

	if proverStatus, hasProverJobs := stageInfo.ProverJobsStatus(r.params.MaxAttempts); hasProverJobs {
		builder.WriteLinef(1, "> Prover Jobs: %s", statusStr(proverStatus))
	}

	if !r.params.Verbose {
		return nil
	}

	switch info := stageInfo.(type) {
	case *public.BasicWitnessGeneratorInfo:
		r.renderWitnessJob(builder, info.WitnessJob)
		return r.renderCircuits(builder, info.Circuits)
	case *public.LeafWitnessGeneratorInfo:
		return r.renderCircuits(builder, info.Circuits)
	case *public.NodeWitnessGeneratorInfo:
		return r.renderCircuits(builder, info.Circuits)
	case *public.RecursionTipInfo:
		r.renderWitnessJob(builder, info.WitnessJob)
		r.renderProverJobs(builder, 1, info.ProverJobs)
		return nil
	case *public.SchedulerInfo:
		r.renderWitnessJob(builder, info.WitnessJob)
		r.renderProverJobs(builder, 1, info.ProverJobs)
		return nil
	case *public.CompressorInfo:
		r.renderCompressionJob(builder, info.Job)
		return nil
	default:
		return fmt.Errorf("unexpected stage info type %T", stageInfo)
	}
}

func (r *BatchRenderer) renderWitnessJob(builder *output.Builder, job *public.WitnessGeneratorJob) {
	if job == nil {
		return
	}
	builder.WriteLinef(1, "> Witness Job: %s, attempts: %d, picked by: %s, error: %s",
		job.Status, job.Attempts, optionalStr(job.PickedBy), optionalStr(job.Error))
}

func (r *BatchRenderer) renderCompressionJob(builder *output.Builder, job *public.CompressionJob) {
	if job == nil {
		return
	}
	builder.WriteLinef(1, "> Compression Job: %s, attempts: %d, picked by: %s, error: %s",
		job.Status, job.Attempts, optionalStr(job.PickedBy), optionalStr(job.Error))
}

func (r *BatchRenderer) renderCircuits(
	builder *output.Builder,
	getCircuits func() ([]*public.CircuitBreakdown, error),
) error {
	circuits, err := getCircuits()
	if err != nil {
		return err
	}

	for _, circuit := range circuits {
		builder.WriteLinef(1, "> Circuit %s (%s)", circuit.CircuitId, circuit.CircuitName)
		if len(circuit.WitnessJobs) > 0 {
			builder.WriteLinef(2, "Witness Jobs: %s", statusStr(circuit.WitnessJobsStatus(r.params.MaxAttempts)))
		}
		if len(circuit.ProverJobs) > 0 {
			builder.WriteLinef(2, "Prover Jobs: %s", statusStr(circuit.ProverJobsStatus(r.params.MaxAttempts)))
		}
		r.renderProverJobs(builder, 2, circuit.ProverJobs)
	}
	return nil
}

// renderProverJobs prints prover job counts by status followed by every stuck job.
func (r *BatchRenderer) renderProverJobs(builder *output.Builder, indent int, jobs []*public.ProverJob) {
	if len(jobs) == 0 {
		return
	}

	builder.WriteLinef(indent, "Prover Job Counts: %s", proverJobCountsStr(public.CountProverJobStatuses(jobs)))
	for _, job := range public.StuckJobs(jobs, r.params.MaxAttempts) {
		builder.WriteLinef(indent, "%s",
			output.RedStr("Stuck Prover Job %d: %s, attempts: %d, error: %s",
				job.Id, job.Status, job.Attempts, optionalStr(job.Error)))
	}
}
