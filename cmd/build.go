package cmd

import (
	"github.com/spf13/cobra"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
)

var buildDryRun bool

var BuildCommand = &cobra.Command{
	Use:   "build [target]",
	Short: "Build images for the resolved ref without pushing",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		pipelineService, _, err := newPipelineService(cwd, nil, nil)
		if err != nil {
			return err
		}

		var targets []string
		if len(args) == 1 {
			targets = args
		}

		_, err = pipelineService.Run(cmd.Context(), domain.RunOptions{
			Targets: targets,
			Trigger: domain.RunTriggerCli,
			Push:    false,
			DryRun:  buildDryRun,
		})
		return err
	},
}

func init() {
	BuildCommand.Flags().BoolVar(&buildDryRun, "dry-run", false, "Print the build plan without invoking docker")
}
