package debug

import (
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
)

type JobSource interface {
	BatchJobSource
	StuckJobSource
}

type proverStatusDebugger struct {
	*batchDebugger
	*stuckJobDetector
}

func NewProverStatusDebugger(
	source JobSource, metrics StuckJobsMetrics, logger logging.Logger,
) public.ProverStatusApi {
	return &proverStatusDebugger{
		batchDebugger:    newBatchDebugger(source, logger),
		stuckJobDetector: newStuckJobDetector(source, metrics, logger),
	}
}
