package cmd

import (
	"github.com/spf13/cobra"
	constants "github.com/stevedore-dev/stevedore/internal"
)

var VersionCommand = &cobra.Command{
	Use:   "version",
	Short: "Print cli version",
	Long:  `This command prints the version of the cli.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.Println("Version:", constants.Version)
		return nil
	},
}
