package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
)

var PushCommand = &cobra.Command{
	Use:   "push [target]",
	Short: "Build and push images for the resolved ref",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {

		user := viper.GetString("registry.user")
		password := viper.GetString("registry.password")
		host := viper.GetString("registry.host")

		if user == "" || password == "" || host == "" {
			return domain.ErrNoCredentials
		}

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
			Push:    true,
		})
		return err
	},
}
