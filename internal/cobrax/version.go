package cobrax

import (
	"fmt"

	"github.com/NilFoundation/proverctl/common/version"
	"github.com/spf13/cobra"
)

// VersionCmd builds the `version` subcommand shared by all binaries.
func VersionCmd(appTitle string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), version.BuildVersionString(appTitle))
			return err
		},
	}
}
