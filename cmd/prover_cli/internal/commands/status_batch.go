package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/config"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/exec"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/report"
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/debug"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/spf13/cobra"
)

type StatusBatchParams struct {
	exec.Params
	Batches BatchNumbers
	Stages  StageSelection
	Verbose bool
}

func (p *StatusBatchParams) Validate() error {
	if len(p.Batches) == 0 {
		return errors.New("at least one batch number is required")
	}
	return p.Params.Validate()
}

type statusBatch struct {
	config *config.Config
	logger logging.Logger
}

func NewStatusBatchCmd(config *config.Config, logger logging.Logger) *statusBatch {
	return &statusBatch{
		config: config,
		logger: logger,
	}
}

func (c *statusBatch) Build() (*cobra.Command, error) {
	params := &StatusBatchParams{
		Params: exec.DefaultExecutorParams(),
	}

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Shows the proving status of the given batches stage by stage",
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
						return getBatchesStatus(ctx, client, params, c.config.MaxAttempts)
					})
				},
			)
		},
	}

	params.Bind(cmd)
	params.Stages.bind(cmd)
	cmd.Flags().BoolVarP(&params.Verbose, "verbose", "v", params.Verbose, "show circuits and prover job details")

	const numberFlag = "number"
	cmd.Flags().VarP(&params.Batches, numberFlag, "n", "batch number, can be repeated or comma separated")
	if err := cmd.MarkFlagRequired(numberFlag); err != nil {
		return nil, err
	}

	return cmd, nil
}

// getBatchesStatus renders batches in the given order.
// Batches rendered before a failure are returned together with the error.
func getBatchesStatus(
	ctx context.Context,
	api public.ProverStatusApi,
	params *StatusBatchParams,
	maxAttempts uint32,
) (exec.CmdOutput, error) {
	renderer := report.NewBatchRenderer(report.Params{
		MaxAttempts: maxAttempts,
		Stages:      params.Stages.Mask(),
		Verbose:     params.Verbose,
	})

	var builder strings.Builder
	for _, batch := range params.Batches {
		data, err := api.GetBatchData(ctx, batch)
		if err != nil {
			return builder.String(), fmt.Errorf("failed to get status of batch %d: %w", batch, err)
		}

		rendered, err := renderer.Render(data)
		if err != nil {
			return builder.String(), err
		}
		builder.WriteString(rendered)
	}

	return builder.String(), nil
}
