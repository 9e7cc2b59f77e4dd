package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NilFoundation/proverctl/common/logging"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type Config struct {
	DatabaseUrl        string
	MaxOpenConnections int
	ConnectTimeout     time.Duration
}

const (
	DefaultMaxOpenConnections = 4
	DefaultConnectTimeout     = 10 * time.Second
)

func NewDefaultConfig(databaseUrl string) Config {
	return Config{
		DatabaseUrl:        databaseUrl,
		MaxOpenConnections: DefaultMaxOpenConnections,
		ConnectTimeout:     DefaultConnectTimeout,
	}
}

func (c Config) Validate() error {
	if c.DatabaseUrl == "" {
		return errors.New("database url is not specified")
	}
	if c.MaxOpenConnections <= 0 {
		return fmt.Errorf("max open connections must be positive, actual is %d", c.MaxOpenConnections)
	}
	return nil
}

// Open creates a connection pool and checks it is reachable within cfg.ConnectTimeout.
// The pool is shared by all queries of a single command invocation.
func Open(ctx context.Context, cfg Config, logger logging.Logger) (*gorm.DB, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid database config: %w", err)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseUrl), &gorm.Config{
		SkipDefaultTransaction: true,
		DisableAutomaticPing:   true,
		Logger:                 newGormLogger(logger),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConnections)
	sqlDB.SetMaxIdleConns(cfg.MaxOpenConnections)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to connect to database: %w", err), sqlDB.Close())
	}

	return db, nil
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// gormLogger routes gorm messages into zerolog; statements are traced at debug level.
type gormLogger struct {
	logger logging.Logger
}

func newGormLogger(logger logging.Logger) gormlogger.Interface {
	return &gormLogger{logger: logger}
}

func (l *gormLogger) LogMode(gormlogger.LogLevel) gormlogger.Interface {
	return l
}

func (l *gormLogger) Info(_ context.Context, format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l *gormLogger) Warn(_ context.Context, format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l *gormLogger) Error(_ context.Context, format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}

func (l *gormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		sql, rows := fc()
		l.logger.Error().Err(err).
			Str("sql", sql).
			Int64("rows", rows).
			Dur(logging.FieldDuration, time.Since(begin)).
			Msg("query failed")
		return
	}

	event := l.logger.Debug()
	if !event.Enabled() {
		return
	}
	sql, rows := fc()
	event.
		Str("sql", sql).
		Int64("rows", rows).
		Dur(logging.FieldDuration, time.Since(begin)).
		Msg("query executed")
}
