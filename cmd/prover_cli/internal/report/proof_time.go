package report

import (
	"fmt"
	"time"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/output"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

// FormatProofTime formats a duration as HH:MM:SS, hours are not wrapped at a day.
func FormatProofTime(duration time.Duration) string {
	sign := ""
	if duration < 0 {
		sign = "-"
		duration = -duration
	}
	totalSeconds := int64(duration / time.Second)
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, totalSeconds/3600, totalSeconds/60%60, totalSeconds%60)
}

// RenderProofTimes prints a line per batch with both commit and prove confirmations; others are skipped.
// The second value is the number of rendered batches.
func RenderProofTimes(timestamps []*public.BatchL1Timestamps) (string, int) {
	var builder output.Builder
	rendered := 0
	for _, batchTimestamps := range timestamps {
		proofTime, ok := batchTimestamps.ProofTime()
		if !ok {
			continue
		}
		builder.WriteLinef(0, "Batch %d: proof time %s", batchTimestamps.BatchNumber, output.CyanStr("%s", FormatProofTime(proofTime)))
		rendered++
	}
	return builder.String(), rendered
}
