package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/memelaunch/launcher/internal/version"
)

var VersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the launcher version",
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "launcher %s (%s)\n", version.Version, version.Commit)
	},
}
