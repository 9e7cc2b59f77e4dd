package commands

import (
	"context"
	"errors"
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

type ProofTimeParams struct {
	exec.NoRefreshParams
	Batches BatchNumbers
}

func (p *ProofTimeParams) Validate() error {
	if len(p.Batches) == 0 {
		return errors.New("at least one batch number is required")
	}
	return nil
}

type statusProofTime struct {
	config *config.Config
	logger logging.Logger
}

func NewStatusProofTimeCmd(config *config.Config, logger logging.Logger) *statusProofTime {
	return &statusProofTime{
		config: config,
		logger: logger,
	}
}

func (c *statusProofTime) Build() (*cobra.Command, error) {
	params := &ProofTimeParams{}

	cmd := &cobra.Command{
		Use:   "proof-time",
		Short: "Shows the time between L1 commit and prove confirmations of the given batches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbConfig, err := c.config.CoreDatabase()
			if err != nil {
				return err
			}

			executor := exec.NewExecutor(os.Stdout, c.logger, params)
			return withClient(
				cmd.Context(), dbConfig, c.logger, infallible(debug.NewBatchL1Client),
				func(client public.BatchL1Api) error {
					return executor.Run(cmd.Context(), func(ctx context.Context) (exec.CmdOutput, error) {
						return getProofTimes(ctx, client, params.Batches)
					})
				},
			)
		},
	}

	const numberFlag = "number"
	cmd.Flags().VarP(&params.Batches, numberFlag, "n", "batch number, can be repeated or comma separated")
	if err := cmd.MarkFlagRequired(numberFlag); err != nil {
		return nil, err
	}

	return cmd, nil
}

func getProofTimes(ctx context.Context, api public.BatchL1Api, batches BatchNumbers) (exec.CmdOutput, error) {
	timestamps, err := api.GetBatchesL1Timestamps(ctx, batches)
	if err != nil {
		return exec.EmptyOutput, fmt.Errorf("failed to get L1 timestamps: %w", err)
	}

	rendered, count := report.RenderProofTimes(timestamps)
	if count == 0 {
		return exec.EmptyOutput, fmt.Errorf(
			"%w: batches %s are not proven on L1 yet", exec.ErrNoDataFound, batches.String(),
		)
	}
	return rendered, nil
}
