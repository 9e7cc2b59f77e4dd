package report

import (
	"fmt"
	"strings"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/output"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

func statusStr(status public.Status) string {
	switch status.Kind {
	case public.StatusKindSuccessful:
		return output.GreenStr("%s", status)
	case public.StatusKindStuck:
		return output.RedStr("%s", status)
	case public.StatusKindInProgress:
		return output.YellowStr("%s", status)
	case public.StatusKindQueued, public.StatusKindWaitingForProofs:
		return output.CyanStr("%s", status)
	default:
		return status.String()
	}
}

func proverJobCountsStr(counts []public.ProverJobStatusCount) string {
	parts := make([]string, 0, len(counts))
	for _, count := range counts {
		parts = append(parts, fmt.Sprintf("%s: %d", count.Status, count.Count))
	}
	return strings.Join(parts, ", ")
}

func batchesStr(batches []public.L1BatchNumber) string {
	parts := make([]string, 0, len(batches))
	for _, batch := range batches {
		parts = append(parts, batch.String())
	}
	return strings.Join(parts, ", ")
}

func optionalStr(value *string) string {
	if value == nil {
		return output.EmptyCell
	}
	return *value
}
