package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevedore-dev/stevedore/internal/core/services/builder"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
)

var registryHost string
var registryUser string
var registryPassword string

var LoginCommand = &cobra.Command{
	Use:   "login",
	Short: "Store registry credentials and log the docker CLI in",
	RunE: func(cmd *cobra.Command, args []string) error {

		dockerCli := builder.NewDockerCli(builder.NewExecCommandRunner())
		if err := dockerCli.Login(cmd.Context(), registryHost, registryUser, registryPassword); err != nil {
			return err
		}

		viper.Set("registry.host", registryHost)
		viper.Set("registry.user", registryUser)
		viper.Set("registry.password", registryPassword)

		if err := viper.WriteConfig(); err != nil {
			return err
		}

		logger.Log().Info("Logged in to " + registryHost)
		return nil
	},
}

func init() {

	LoginCommand.Flags().StringVarP(&registryHost, "host", "", "", "Registry host")

	LoginCommand.Flags().StringVarP(&registryUser, "user", "u", "", "username")

	LoginCommand.Flags().StringVarP(&registryPassword, "password", "p", "", "User password or access token")

	LoginCommand.MarkFlagRequired("host")
	LoginCommand.MarkFlagRequired("user")
	LoginCommand.MarkFlagRequired("password")
}
