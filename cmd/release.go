package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

var releaseSkipManifest bool

var ReleaseCommand = &cobra.Command{
	Use:   "release",
	Short: "Run the full pipeline: resolve, build, push, publish release manifest",
	Long: `This command is the one-shot CI entrypoint. It resolves the ref,
builds every target, pushes all derived tags and publishes a release
manifest artifact that pins the pushed images by digest.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		user := viper.GetString("registry.user")
		password := viper.GetString("registry.password")
		host := viper.GetString("registry.host")

		if user == "" || password == "" || host == "" {
			return domain.ErrNoCredentials
		}

		pipelineService, pipeline, err := newPipelineService(cwd, nil, nil)
		if err != nil {
			return err
		}

		if !releaseSkipManifest {
			pipeline.Release.Publish = true
		}

		run, err := pipelineService.Run(cmd.Context(), domain.RunOptions{
			Trigger: domain.RunTriggerCli,
			Push:    true,
		})
		if err != nil {
			return err
		}

		logger.Log().Info("Release complete", zap.Strings("images", run.Images))
		return nil
	},
}

func init() {
	ReleaseCommand.Flags().BoolVar(&releaseSkipManifest, "skip-manifest", false, "Skip publishing the release manifest artifact")
}
