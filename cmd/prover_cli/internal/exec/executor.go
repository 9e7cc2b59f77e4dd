package exec

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/NilFoundation/proverctl/common/concurrent"
	"github.com/NilFoundation/proverctl/common/logging"
)

type CmdParams interface {
	Validate() error
	GetExecutorParams() *Params
}

type CmdOutput = string

const EmptyOutput = ""

// Command produces the output of a single run.
// Output returned together with an error is still printed, so partial results are not lost.
type Command func(ctx context.Context) (CmdOutput, error)

type Executor[P CmdParams] struct {
	writer io.StringWriter
	logger logging.Logger
	params P
}

func NewExecutor[P CmdParams](
	writer io.StringWriter,
	logger logging.Logger,
	params P,
) *Executor[P] {
	return &Executor[P]{
		writer: writer,
		logger: logger,
		params: params,
	}
}

// Run executes the command once, or periodically if auto refresh is enabled.
// Errors of a single run are returned, refresh iterations only log them and keep going until interrupted.
func (t *Executor[P]) Run(ctx context.Context, command Command) error {
	if err := t.params.Validate(); err != nil {
		return fmt.Errorf("invalid command params: %w", err)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	executorParams := t.params.GetExecutorParams()

	runIteration := func(ctx context.Context) error {
		output, err := command(ctx)
		t.writeOutput(output)
		return t.onCommandError(err)
	}

	if !executorParams.AutoRefresh {
		return runIteration(ctx)
	}

	if err := runIteration(ctx); err != nil {
		t.logger.Error().Err(err).Msg("Command execution failed")
	}

	concurrent.RunTickerLoop(ctx, executorParams.RefreshInterval, func(ctx context.Context) {
		t.clearScreen()
		t.logger.Info().Msg("Refreshing data")
		if err := runIteration(ctx); err != nil {
			t.logger.Error().Err(err).Msg("Command execution failed")
		}
	})

	return nil
}

func (t *Executor[P]) writeOutput(output CmdOutput) {
	if output == EmptyOutput {
		return
	}
	if _, err := t.writer.WriteString(output); err != nil {
		t.logger.Error().Err(err).Msg("Failed to write command output")
	}
}

// clearScreen clears terminal window using ANSI escape codes
func (t *Executor[P]) clearScreen() {
	_, err := t.writer.WriteString("\033[H\033[2J")
	if err != nil {
		t.logger.Error().Err(err).Msg("failed to clear screen")
	}
}

// onCommandError filters out errors which do not mean the command has failed.
func (t *Executor[P]) onCommandError(err error) error {
	switch {
	case err == nil:
		return nil

	case errors.Is(err, context.Canceled):
		t.logger.Info().Err(err).Msg("Command execution canceled")
		return nil

	case errors.Is(err, ErrNoDataFound):
		t.logger.Warn().Err(err).Msg("No data found")
		return nil

	default:
		return err
	}
}
