package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/config"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/exec"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/report"
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/debug"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/spf13/cobra"
)

type StatusStuckParams struct {
	exec.Params
	Verbose bool
}

type statusStuck struct {
	config *config.Config
	logger logging.Logger
}

func NewStatusStuckCmd(config *config.Config, logger logging.Logger) *statusStuck {
	return &statusStuck{
		config: config,
		logger: logger,
	}
}

func (c *statusStuck) Build() (*cobra.Command, error) {
	params := &StatusStuckParams{
		Params: exec.DefaultExecutorParams(),
	}

	cmd := &cobra.Command{
		Use:   "stuck",
		Short: "Lists jobs of every aggregation round which reached the retry limit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbConfig, err := c.config.ProverDatabase()
			if err != nil {
				return err
			}

			executor := exec.NewExecutor(os.Stdout, c.logger, params)
			return withClient(
				cmd.Context(), dbConfig, c.logger, debug.NewProverStatusClient,
				func(client public.ProverStatusApi) error {
					return executor.Run(cmd.Context(), func(ctx context.Context) (exec.CmdOutput, error) {
						return getStuckJobs(ctx, client, c.config.MaxAttempts, params.Verbose)
					})
				},
			)
		},
	}

	params.Bind(cmd)
	cmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", params.Verbose, "show stuck prover job details")

	return cmd, nil
}

func getStuckJobs(
	ctx context.Context,
	api public.ProverStatusApi,
	maxAttempts uint32,
	verbose bool,
) (exec.CmdOutput, error) {
	stuckJobs, err := api.GetStuckJobs(ctx, maxAttempts)
	if err != nil {
		return exec.EmptyOutput, fmt.Errorf("failed to scan stuck jobs: %w", err)
	}
	return report.RenderStuckJobs(stuckJobs, verbose)
}
