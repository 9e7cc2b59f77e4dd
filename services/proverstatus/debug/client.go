package debug

import (
	"context"
	"fmt"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/internal/telemetry"
	internalDebug "github.com/NilFoundation/proverctl/services/proverstatus/internal/debug"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/metrics"
	"github.com/NilFoundation/proverctl/services/proverstatus/internal/storage"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"gorm.io/gorm"
)

type DatabaseConfig = storage.Config

func NewDatabaseConfig(databaseUrl string) DatabaseConfig {
	return storage.NewDefaultConfig(databaseUrl)
}

// OpenDatabase connects to a prover or core database; the caller is responsible for CloseDatabase.
func OpenDatabase(ctx context.Context, config DatabaseConfig, logger logging.Logger) (*gorm.DB, error) {
	return storage.Open(ctx, config, logger)
}

func CloseDatabase(db *gorm.DB) error {
	return storage.Close(db)
}

const metricsName = "prover_status"

// NewProverStatusClient builds the status api; stuck job scans are published through the global meter provider.
func NewProverStatusClient(proverDb *gorm.DB, logger logging.Logger) (public.ProverStatusApi, error) {
	stuckMetrics, err := metrics.NewStuckJobsMetrics(metricsName, telemetry.NewMeter(metricsName))
	if err != nil {
		return nil, fmt.Errorf("failed to init stuck jobs metrics: %w", err)
	}
	return internalDebug.NewProverStatusDebugger(storage.NewJobRecordStorage(proverDb, logger), stuckMetrics, logger), nil
}

func NewProverAdminClient(proverDb *gorm.DB, logger logging.Logger) public.ProverAdminApi {
	return storage.NewJobRecordStorage(proverDb, logger)
}

func NewBatchL1Client(coreDb *gorm.DB, logger logging.Logger) public.BatchL1Api {
	return storage.NewBatchL1Storage(coreDb, logger)
}
