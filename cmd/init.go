package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"github.com/stevedore-dev/stevedore/internal/core/services/scaffold"
	"go.uber.org/zap"
)

var initName string
var initRepo string
var initForce bool

var InitCommand = &cobra.Command{
	Use:   "init",
	Short: "Scaffold stevedore.yaml, a Dockerfile and a GitHub Actions workflow",
	RunE: func(cmd *cobra.Command, args []string) error {

		name := initName
		if name == "" {
			name = filepath.Base(cwd)
		}
		repo := initRepo
		if repo == "" {
			repo = name
		}

		scaffolder := scaffold.NewScaffolder()
		written, err := scaffolder.Render(cwd, scaffold.Data{
			Name:         name,
			RegistryHost: viper.GetString("registry.host"),
			RegistryRepo: repo,
		}, initForce)

		for _, file := range written {
			logger.Log().Info("Wrote " + file)
		}
		if err != nil {
			logger.Log().Error("Scaffolding incomplete", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	InitCommand.Flags().StringVar(&initName, "name", "", "Project name (defaults to the directory name)")
	InitCommand.Flags().StringVar(&initRepo, "repo", "", "Registry repository (defaults to the project name)")
	InitCommand.Flags().BoolVar(&initForce, "force", false, "Overwrite existing files")
}
