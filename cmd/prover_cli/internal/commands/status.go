package commands

import (
	"fmt"

	"github.com/NilFoundation/proverctl/cmd/prover_cli/internal/config"
	"github.com/NilFoundation/proverctl/common/logging"
	"github.com/spf13/cobra"
)

type status struct {
	config *config.Config
	logger logging.Logger
}

func NewStatusCmd(config *config.Config, logger logging.Logger) *status {
	return &status{
		config: config,
		logger: logger,
	}
}

func (c *status) Build() (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Inspects the state of batch proving",
	}

	builders := []interface {
		Build() (*cobra.Command, error)
	}{
		NewStatusBatchCmd(c.config, c.logger),
		NewStatusStuckCmd(c.config, c.logger),
		NewStatusProofTimeCmd(c.config, c.logger),
	}

	for _, builder := range builders {
		subCmd, err := builder.Build()
		if err != nil {
			return nil, fmt.Errorf("failed to build status subcommand: %w", err)
		}
		cmd.AddCommand(subCmd)
	}

	return cmd, nil
}
