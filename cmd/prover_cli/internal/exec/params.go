package exec

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var ErrNoDataFound = errors.New("no data found")

type Params struct {
	AutoRefresh     bool
	RefreshInterval time.Duration
}

const (
	RefreshIntervalMinimal = 100 * time.Millisecond
	RefreshIntervalDefault = 5 * time.Second
)

func DefaultExecutorParams() Params {
	return Params{
		AutoRefresh:     false,
		RefreshInterval: RefreshIntervalDefault,
	}
}

func (p Params) Validate() error {
	if p.AutoRefresh && p.RefreshInterval < RefreshIntervalMinimal {
		return fmt.Errorf(
			"refresh interval cannot be less than %s, actual is %s", RefreshIntervalMinimal, p.RefreshInterval)
	}
	return nil
}

func (p Params) GetExecutorParams() *Params {
	return &p
}

// Bind registers refresh flags of the command.
func (p *Params) Bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&p.AutoRefresh, "refresh", p.AutoRefresh, "should the received data be refreshed")
	cmd.Flags().DurationVar(
		&p.RefreshInterval,
		"refresh-interval",
		p.RefreshInterval,
		fmt.Sprintf("refresh interval, min value is %s", RefreshIntervalMinimal),
	)
}

type NoRefreshParams struct{}

func (*NoRefreshParams) GetExecutorParams() *Params {
	params := DefaultExecutorParams()
	params.AutoRefresh = false
	return &params
}

func (*NoRefreshParams) Validate() error {
	return nil
}
