package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/config"
	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/exec"
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/NilFoundation/proverctl/services/proverstatus/debug"
	"github.com/NilFoundation/proverctl/services/proverstatus/public"
	"github.com/spf13/cobra"
)

type InsertBatchParams struct {
	exec.NoRefreshParams

	Batch            public.L1BatchNumber
	ProtocolVersion  public.ProtocolSemanticVersion
	WitnessInputsUrl string
	AssumeYes        bool
}

func (p *InsertBatchParams) Validate() error {
	if p.Batch == 0 {
		return errors.New("batch number is required")
	}
	if p.WitnessInputsUrl == "" {
		return errors.New("witness inputs url is required")
	}
	return nil
}

type insertBatch struct {
	config    *config.Config
	confirmer *exec.Confirmer
	logger    logging.Logger
}

func NewInsertBatchCmd(config *config.Config, logger logging.Logger) *insertBatch {
	return &insertBatch{
		config:    config,
		confirmer: exec.NewStdConfirmer(),
		logger:    logger,
	}
}

func (c *insertBatch) Build() (*cobra.Command, error) {
	params := &InsertBatchParams{}

	cmd := &cobra.Command{
		Use:   "insert-batch",
		Short: "Queues a batch for proving by inserting its witness input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dbConfig, err := c.config.ProverDatabase()
			if err != nil {
				return err
			}

			executor := exec.NewExecutor(os.Stdout, c.logger, params)
			return withClient(
				cmd.Context(), dbConfig, c.logger, infallible(debug.NewProverAdminClient),
				func(client public.ProverAdminApi) error {
					return executor.Run(cmd.Context(), func(ctx context.Context) (exec.CmdOutput, error) {
						return insertWitnessInput(ctx, client, c.confirmer, params)
					})
				},
			)
		},
	}

	const (
		numberFlag  = "number"
		versionFlag = "version"
		urlFlag     = "witness-inputs-url"
	)
	cmd.Flags().VarP(&params.Batch, numberFlag, "n", "number of the batch")
	cmd.Flags().Var(&params.ProtocolVersion, versionFlag, "protocol semantic version of the batch, e.g. 0.24.2")
	cmd.Flags().StringVar(&params.WitnessInputsUrl, urlFlag, params.WitnessInputsUrl, "location of the witness inputs blob")
	cmd.Flags().BoolVarP(&params.AssumeYes, "yes", "y", params.AssumeYes, "do not ask for confirmation")

	for _, flag := range []string{numberFlag, versionFlag, urlFlag} {
		if err := cmd.MarkFlagRequired(flag); err != nil {
			return nil, err
		}
	}

	return cmd, nil
}

func insertWitnessInput(
	ctx context.Context,
	api public.ProverAdminApi,
	confirmer *exec.Confirmer,
	params *InsertBatchParams,
) (exec.CmdOutput, error) {
	question := fmt.Sprintf("Batch %d with protocol version %s will be queued for proving. Continue?",
		params.Batch, params.ProtocolVersion)
	confirmed, err := confirmer.Confirm(question, params.AssumeYes)
	if err != nil {
		return exec.EmptyOutput, err
	}
	if !confirmed {
		return exec.AbortedOutput, nil
	}

	input := public.WitnessInput{
		BatchNumber:     params.Batch,
		BlobUrl:         params.WitnessInputsUrl,
		ProtocolVersion: params.ProtocolVersion,
	}
	if err := api.InsertWitnessInput(ctx, input); err != nil {
		return exec.EmptyOutput, fmt.Errorf("failed to insert batch %d: %w", params.Batch, err)
	}
	return fmt.Sprintf("Batch %d inserted\n", params.Batch), nil
}
