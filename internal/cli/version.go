package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/merman-go/merman/pkg/buildinfo"
)

// versionCommand builds the "version" subcommand, printing the same
// ldflags-injected version/commit/date triple as the root command's
// --version flag.
func (c *CLI) versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())
			return err
		},
	}
}
