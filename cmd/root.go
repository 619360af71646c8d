package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"github.com/stevedore-dev/stevedore/internal/utils/env"
)

var envPath string
var cwd string
var loggerFormat string

var RootCmd = &cobra.Command{
	Use:   "stevedore",
	Short: "Stevedore builds and publishes container images from git refs",
	Long: `Stevedore resolves the current git ref, derives deterministic
image tags, builds container images and pushes them to a registry.
It is the piece of a CI/CD setup that turns "a commit happened"
into "these images exist".`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Usage()
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.NewLogger(loggerFormat)
		env.AttemptReadLocalEnvironment(envPath)
	},
}

func init() {

	viper.SetDefault("registry.host", "registry-1.docker.io")
	cobra.OnInitialize(initConfig)

	c, _ := os.Getwd()

	RootCmd.PersistentFlags().StringVarP(&cwd, "cwd", "", c, "Directory containing stevedore.yaml and the source tree")
	RootCmd.PersistentFlags().StringVarP(&loggerFormat, "log-format", "", "cli", "Log format (structured, cli)")

	RootCmd.PersistentFlags().StringVarP(&envPath, "env-file", "e", "./.env", "Path to environment file (.env)")

	RootCmd.AddCommand(VersionCommand)
	RootCmd.AddCommand(LoginCommand)
	RootCmd.AddCommand(ResolveCommand)
	RootCmd.AddCommand(BuildCommand)
	RootCmd.AddCommand(PushCommand)
	RootCmd.AddCommand(ReleaseCommand)
	RootCmd.AddCommand(TagsCommand)
	RootCmd.AddCommand(ValidateCommand)
	RootCmd.AddCommand(InitCommand)
	RootCmd.AddCommand(ServeCommand)
}

func initConfig() {
	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	viper.SetConfigType("yaml")
	viper.SetConfigName(".stevedore")

	viper.AddConfigPath(home)

	viper.SetEnvPrefix("STEVEDORE")
	viper.AutomaticEnv()
	viper.SafeWriteConfig()
	viper.ReadInConfig()
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
