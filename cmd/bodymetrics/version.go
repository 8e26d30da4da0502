package bodymetrics

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X github.com/saadjs/bodymetrics-cli/cmd/bodymetrics.version=...".
var (
	version = "dev"
	commit  = "none"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version/build metadata",
	Run: func(cmd *cobra.Command, args []string) {
		printVersion(cmd)
	},
}

func printVersion(cmd *cobra.Command) {
	fmt.Fprintf(cmd.OutOrStdout(), "bodymetrics %s (commit %s)\n", version, commit)
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
