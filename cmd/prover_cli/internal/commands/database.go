package commands

import (
	"context"

	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/debug"
	"gorm.io/gorm"
)

// withClient opens a database for the duration of a single command invocation.
// Refresh iterations share the connection pool.
func withClient[C any](
	ctx context.Context,
	dbConfig debug.DatabaseConfig,
	logger logging.Logger,
	newClient func(db *gorm.DB, logger logging.Logger) (C, error),
	run func(client C) error,
) error {
	db, err := debug.OpenDatabase(ctx, dbConfig, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := debug.CloseDatabase(db); err != nil {
			logger.Error().Err(err).Msg("Failed to close database")
		}
	}()

	client, err := newClient(db, logger)
	if err != nil {
		return err
	}
	return run(client)
}

// infallible adapts constructors which cannot fail to withClient.
func infallible[C any](
	newClient func(db *gorm.DB, logger logging.Logger) C,
) func(db *gorm.DB, logger logging.Logger) (C, error) {
	return func(db *gorm.DB, logger logging.Logger) (C, error) {
		return newClient(db, logger), nil
	}
}
