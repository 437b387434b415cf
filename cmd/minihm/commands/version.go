package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the CLI's own version string, distinct from any Go
// module version; it can be overridden at build time with
// -ldflags "-X minihm/cmd/minihm/commands.Version=...".
var Version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of minihm",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("minihm version %s\n", Version)
	},
}
