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

type RestartParams struct {
	exec.NoRefreshParams

	Batch       public.L1BatchNumber
	ProverJobId uint32
	AssumeYes   bool
}

func (p *RestartParams) Validate() error {
	if (p.Batch == 0) == (p.ProverJobId == 0) {
		return errors.New("exactly one of batch number or prover job id must be specified")
	}
	return nil
}

type restart struct {
	config    *config.Config
	confirmer *exec.Confirmer
	logger    logging.Logger
}

func NewRestartCmd(config *config.Config, logger logging.Logger) *restart {
	return &restart{
		config:    config,
		confirmer: exec.NewStdConfirmer(),
		logger:    logger,
	}
}

func (c *restart) Build() (*cobra.Command, error) {
	params := &RestartParams{}

	cmd := &cobra.Command{
		Use:   "restart",
		Short: "Restarts proving of a whole batch or of a single prover job",
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
						return restartJobs(ctx, client, c.confirmer, params)
					})
				},
			)
		},
	}

	const (
		batchFlag     = "batch"
		proverJobFlag = "prover-job"
	)
	cmd.Flags().Var(&params.Batch, batchFlag, "batch to be proven from scratch")
	cmd.Flags().Uint32Var(&params.ProverJobId, proverJobFlag, params.ProverJobId, "id of the prover job to be requeued")
	cmd.Flags().BoolVarP(&params.AssumeYes, "yes", "y", params.AssumeYes, "do not ask for confirmation")
	cmd.MarkFlagsMutuallyExclusive(batchFlag, proverJobFlag)
	cmd.MarkFlagsOneRequired(batchFlag, proverJobFlag)

	return cmd, nil
}

func restartJobs(
	ctx context.Context,
	api public.ProverAdminApi,
	confirmer *exec.Confirmer,
	params *RestartParams,
) (exec.CmdOutput, error) {
	if params.Batch != 0 {
		return restartBatch(ctx, api, confirmer, params.Batch, params.AssumeYes)
	}
	return restartProverJob(ctx, api, confirmer, params.ProverJobId, params.AssumeYes)
}

func restartBatch(
	ctx context.Context,
	api public.ProverAdminApi,
	confirmer *exec.Confirmer,
	batch public.L1BatchNumber,
	assumeYes bool,
) (exec.CmdOutput, error) {
	question := fmt.Sprintf(
		"All witness, prover and compression jobs of batch %d will be deleted and its proving restarted. Continue?",
		batch,
	)
	confirmed, err := confirmer.Confirm(question, assumeYes)
	if err != nil {
		return exec.EmptyOutput, err
	}
	if !confirmed {
		return exec.AbortedOutput, nil
	}

	if err := api.RestartBatch(ctx, batch); err != nil {
		if errors.Is(err, public.ErrWitnessInputNotFound) {
			return exec.EmptyOutput, fmt.Errorf("%w: %w", exec.ErrNoDataFound, err)
		}
		return exec.EmptyOutput, fmt.Errorf("failed to restart batch %d: %w", batch, err)
	}
	return fmt.Sprintf("Batch %d restarted\n", batch), nil
}

func restartProverJob(
	ctx context.Context,
	api public.ProverAdminApi,
	confirmer *exec.Confirmer,
	id uint32,
	assumeYes bool,
) (exec.CmdOutput, error) {
	confirmed, err := confirmer.Confirm(fmt.Sprintf("Prover job %d will be requeued. Continue?", id), assumeYes)
	if err != nil {
		return exec.EmptyOutput, err
	}
	if !confirmed {
		return exec.AbortedOutput, nil
	}

	if err := api.RestartProverJob(ctx, id); err != nil {
		if errors.Is(err, public.ErrProverJobNotFound) {
			return exec.EmptyOutput, fmt.Errorf("%w: %w", exec.ErrNoDataFound, err)
		}
		return exec.EmptyOutput, fmt.Errorf("failed to restart prover job %d: %w", id, err)
	}
	return fmt.Sprintf("Prover job %d requeued\n", id), nil
}
