package report

import (
	"fmt"
	"strconv"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/output"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

const NoStuckJobsMessage = "no stuck jobs"

// RenderStuckJobs formats a fleet scan; every round is listed, including the healthy ones.
func RenderStuckJobs(report *public.StuckJobsReport, verbose bool) (string, error) {
	var builder output.Builder
	builder.WriteLine(output.BoldStr("== Stuck Jobs (attempts = %d) ==", report.MaxAttempts))

	for _, round := range report.Rounds {
		stage := public.StageOf(round.Round)
		if round.IsEmpty() {
			builder.WriteLinef(0, "-- %s: %s", stage, output.GreenStr(NoStuckJobsMessage))
			continue
		}

		builder.WriteLinef(0, "-- %s:", stage)
		if len(round.WitnessBatches) > 0 {
			builder.WriteLinef(1, "> Witness jobs stuck in batches: %s", output.RedStr("%s", batchesStr(round.WitnessBatches)))
		}
		if len(round.ProverJobs) == 0 {
			continue
		}
		builder.WriteLinef(1, "> Prover jobs stuck in batches: %s", output.RedStr("%s", batchesStr(round.ProverBatches())))

		if verbose {
			table, err := stuckProverJobsTable(round.ProverJobs)
			if err != nil {
				return "", err
			}
			builder.WriteString(table.AsCmdOutput())
		}
	}

	return builder.String(), nil
}

// stuckProverJobsTable lists jobs by logical circuit, the stored id is kept to look rows up in the database.
func stuckProverJobsTable(jobs []*public.ProverJob) (*output.Table, error) {
	rows := make([]output.TableRow, 0, len(jobs))
	for _, job := range jobs {
		circuitId, err := job.LogicalCircuitId()
		if err != nil {
			return nil, fmt.Errorf("prover job %d: %w", job.Id, err)
		}
		circuitName, err := public.CircuitName(circuitId)
		if err != nil {
			return nil, fmt.Errorf("prover job %d: %w", job.Id, err)
		}

		rows = append(rows, output.NewTableRowStr(
			strconv.FormatUint(uint64(job.Id), 10),
			job.BatchNumber.String(),
			circuitId.String(),
			circuitName,
			strconv.Itoa(int(job.RawCircuitId)),
			job.Status.String(),
			strconv.FormatUint(uint64(job.Attempts), 10),
			optionalStr(job.PickedBy),
			optionalStr(job.Error),
		))
	}
	return output.NewTable(
		output.NewTableRowStr(
			"Id", "Batch", "Circuit", "Circuit Name", "Raw Circuit", "Status", "Attempts", "Picked By", "Error",
		),
		rows,
	)
}
