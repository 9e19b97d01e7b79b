package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// set through ldflags on release builds
var (
	version = "latest"
	commit  = "none"
)

// NewVersionCommand prints the build the admin service was released from
func NewVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the contentadmin release",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "contentadmin %s (commit %s, %s)\n", version, commit, runtime.Version())
		},
	}
	return cmd
}
