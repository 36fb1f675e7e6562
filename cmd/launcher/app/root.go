package app

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:           "launcher",
	Short:         "Launch tokens on four.meme for a list of accounts",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func init() {
	RootCmd.PersistentFlags().String("config", "", "Directory containing config.yaml")
	RootCmd.PersistentFlags().String("templates", "", "Path to the templates file (JSON or YAML)")

	RootCmd.AddCommand(RunCmd)
	RootCmd.AddCommand(CheckCmd)
	RootCmd.AddCommand(VersionCmd)
}

func Execute() error {
	return RootCmd.Execute()
}
