package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/NilFoundation/proverctl/services/proverstatus/debug"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const EnvPrefix = "PROVER_CLI"

const (
	DatabaseUrlField        = "database_url"
	CoreDatabaseUrlField    = "core_database_url"
	MaxAttemptsField        = "max_attempts"
	MaxOpenConnectionsField = "max_open_connections"
	LogLevelField           = "log_level"
	ConnectTimeoutField     = "connect_timeout"
	MetricsEndpointField    = "metrics_endpoint"
)

type Config struct {
	DatabaseUrl        string        `mapstructure:"database_url"`
	CoreDatabaseUrl    string        `mapstructure:"core_database_url"`
	MaxAttempts        uint32        `mapstructure:"max_attempts"`
	MaxOpenConnections int           `mapstructure:"max_open_connections"`
	LogLevel           zerolog.Level `mapstructure:"log_level"`
	ConnectTimeout     time.Duration `mapstructure:"connect_timeout"`
	MetricsEndpoint    string        `mapstructure:"metrics_endpoint"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(DatabaseUrlField, "")
	v.SetDefault(CoreDatabaseUrlField, "")
	v.SetDefault(MaxAttemptsField, public.DefaultMaxAttempts)
	v.SetDefault(MaxOpenConnectionsField, debug.NewDatabaseConfig("").MaxOpenConnections)
	v.SetDefault(LogLevelField, zerolog.InfoLevel.String())
	v.SetDefault(ConnectTimeoutField, debug.NewDatabaseConfig("").ConnectTimeout.String())
	v.SetDefault(MetricsEndpointField, "")
}

// BindFlags maps command line flags onto config keys, flag values take precedence over the config file.
// Flag names are the keys with dashes instead of underscores.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{
		DatabaseUrlField,
		CoreDatabaseUrlField,
		MaxAttemptsField,
		LogLevelField,
		MetricsEndpointField,
	} {
		flag := flags.Lookup(FlagName(key))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("failed to bind flag %q: %w", flag.Name, err)
		}
	}
	return nil
}

func FlagName(key string) string {
	return strings.ReplaceAll(key, "_", "-")
}

// Load reads the configuration from environment, an optional config file and bound flags.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{}
	if err := v.Unmarshal(config, updateDecoderConfig); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return config, nil
}

func decodeLogLevel(f reflect.Type, t reflect.Type, data any) (any, error) {
	if f.Kind() == reflect.String && t == reflect.TypeOf(zerolog.Level(0)) {
		s, _ := data.(string)
		return zerolog.ParseLevel(s)
	}
	return data, nil
}

func updateDecoderConfig(config *mapstructure.DecoderConfig) {
	config.DecodeHook = mapstructure.ComposeDecodeHookFunc(
		config.DecodeHook,
		mapstructure.StringToTimeDurationHookFunc(),
		decodeLogLevel,
	)
}

func (c *Config) Validate() error {
	var errs []error
	if c.MaxAttempts == 0 {
		errs = append(errs, fmt.Errorf("%q must be positive", MaxAttemptsField))
	}
	if c.MaxOpenConnections <= 0 {
		errs = append(errs, fmt.Errorf("%q must be positive, actual is %d", MaxOpenConnectionsField, c.MaxOpenConnections))
	}
	if c.ConnectTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%q must be positive, actual is %s", ConnectTimeoutField, c.ConnectTimeout))
	}
	return errors.Join(errs...)
}

// ProverDatabase returns connection settings of the prover database, which is required by every data command.
func (c *Config) ProverDatabase() (debug.DatabaseConfig, error) {
	if c.DatabaseUrl == "" {
		return debug.DatabaseConfig{}, fmt.Errorf(
			"%q is missing in config, set it via --%s or %s_%s",
			DatabaseUrlField, FlagName(DatabaseUrlField), EnvPrefix, strings.ToUpper(DatabaseUrlField),
		)
	}
	return c.databaseConfig(c.DatabaseUrl), nil
}

// CoreDatabase returns connection settings of the core database, which holds L1 settlement data.
func (c *Config) CoreDatabase() (debug.DatabaseConfig, error) {
	if c.CoreDatabaseUrl == "" {
		return debug.DatabaseConfig{}, fmt.Errorf(
			"%q is missing in config, set it via --%s or %s_%s",
			CoreDatabaseUrlField, FlagName(CoreDatabaseUrlField), EnvPrefix, strings.ToUpper(CoreDatabaseUrlField),
		)
	}
	return c.databaseConfig(c.CoreDatabaseUrl), nil
}

func (c *Config) databaseConfig(url string) debug.DatabaseConfig {
	dbConfig := debug.NewDatabaseConfig(url)
	dbConfig.MaxOpenConnections = c.MaxOpenConnections
	dbConfig.ConnectTimeout = c.ConnectTimeout
	return dbConfig
}
