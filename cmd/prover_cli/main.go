package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/commands"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/config"
	"github.com/NilFoundation/proverctl/common/check"
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/internal/cobrax"
	"github.com/NilFoundation/proverctl/internal/telemetry"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	appTitle = "=nil; Prover CLI"

	telemetryShutdownTimeout = 5 * time.Second
)

type RootCommand struct {
	baseCmd *cobra.Command
	config  config.Config
	cfgFile string
}

var noConfigCmd = map[string]struct{}{
	"help":             {},
	"completion":       {},
	"__complete":       {},
	"__completeNoDesc": {},
	"version":          {},
}

func main() {
	check.PanicIfNotCancelledErr(execute())
}

func execute() error {
	logging.SetupGlobalLogger("info")
	logger := logging.NewLogger("prover_cli")

	rootCmd := &RootCommand{}
	rootCmd.baseCmd = &cobra.Command{
		Use:   "prover_cli",
		Short: "CLI tool for inspecting and managing batch proving",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			for cmd.HasParent() && cmd.Parent() != rootCmd.baseCmd {
				cmd = cmd.Parent()
			}
			if _, withoutConfig := noConfigCmd[cmd.Name()]; withoutConfig {
				return nil
			}
			return rootCmd.loadConfig()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.baseCmd.PersistentFlags()
	flags.StringVarP(&rootCmd.cfgFile, "config", "c", "", "Path to config file (yaml, toml or ini)")
	flags.StringP(config.FlagName(config.LogLevelField), "l", "info", "Log level: trace|debug|info|warn|error|fatal|panic")
	flags.String(config.FlagName(config.DatabaseUrlField), "", "Prover database url")
	flags.String(config.FlagName(config.CoreDatabaseUrlField), "", "Core database url, used by the proof time view")
	flags.Uint32(config.FlagName(config.MaxAttemptsField), public.DefaultMaxAttempts, "Number of attempts after which a job is stuck")
	flags.String(config.FlagName(config.MetricsEndpointField), "", "OTLP gRPC collector url, stuck job scans are exported as metrics")

	if err := rootCmd.registerSubCommands(logger); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func (rc *RootCommand) registerSubCommands(logger logging.Logger) error {
	builders := []interface {
		Build() (*cobra.Command, error)
	}{
		commands.NewStatusCmd(&rc.config, logger),
		commands.NewRestartCmd(&rc.config, logger),
		commands.NewInsertBatchCmd(&rc.config, logger),
	}

	for _, builder := range builders {
		command, err := builder.Build()
		if err != nil {
			return fmt.Errorf("failed to build command: %w", err)
		}
		rc.baseCmd.AddCommand(command)
	}

	rc.baseCmd.AddCommand(cobrax.VersionCmd(appTitle))
	return nil
}

// loadConfig resolves the configuration from flags, environment and the optional config file
func (rc *RootCommand) loadConfig() error {
	v := viper.New()
	if err := config.BindFlags(v, rc.baseCmd.PersistentFlags()); err != nil {
		return err
	}

	cfg, err := config.Load(v, rc.cfgFile)
	if err != nil {
		return err
	}
	if err := logging.TrySetupGlobalLevel(cfg.LogLevel.String()); err != nil {
		return err
	}
	if err := telemetry.Init(context.Background(), &telemetry.Config{
		ServiceName:     "prover_cli",
		MetricsEndpoint: cfg.MetricsEndpoint,
	}); err != nil {
		return fmt.Errorf("failed to init telemetry: %w", err)
	}

	rc.config = *cfg
	return nil
}

// Execute runs the root command. Command failures are reported and end the process with a non-zero code,
// only cancellation is returned to the caller.
func (rc *RootCommand) Execute() error {
	err := rc.baseCmd.Execute()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
	telemetry.Shutdown(shutdownCtx)
	cancel()

	if err == nil || errors.Is(err, context.Canceled) {
		return err
	}

	_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
	return nil
}
