package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stevedore-dev/stevedore/cmd/server/web"
	"github.com/stevedore-dev/stevedore/internal/core/services"
	"github.com/stevedore-dev/stevedore/internal/core/services/fetch"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"github.com/stevedore-dev/stevedore/internal/handler"
	"github.com/stevedore-dev/stevedore/internal/signals"
	"go.uber.org/zap"
)

var port int
var shutdownWait int
var apiToken string
var disablePrometheus bool

var ServeCommand = &cobra.Command{
	Use:   "serve",
	Short: "Run as a daemon accepting webhook and cron triggers",
	Long: `This command locks the terminal by starting the daemon, which
accepts GitHub push webhooks and cron triggers, runs the pipeline for
each and exposes runs, logs and metrics over an HTTP API.`,
	RunE: func(cmd *cobra.Command, args []string) error {

		logger.Log().Info("Starting Stevedore daemon")

		if apiToken == "" {
			apiToken = viper.GetString("api.token")
		}

		runManager := services.NewRunManager()
		metrics := services.NewRunMetrics(!disablePrometheus)
		defer metrics.Shutdown()

		pipelineService, pipeline, err := newPipelineService(cwd, runManager, metrics)
		if err != nil {
			return err
		}

		logger.Log().Info("Pipeline loaded",
			zap.String("name", pipeline.Name),
			zap.Any("version", pipeline.Version),
			zap.Int("targets", len(pipeline.Targets)),
		)

		fetcher := fetch.NewSourceFetcher(os.TempDir())

		var webhookSecret string
		if pipeline.Triggers.Webhook != nil && pipeline.Triggers.Webhook.SecretEnv != "" {
			webhookSecret = os.Getenv(pipeline.Triggers.Webhook.SecretEnv)
			if webhookSecret == "" {
				logger.Log().Warn("Webhook secret env is configured but empty, signature checks disabled",
					zap.String("env", pipeline.Triggers.Webhook.SecretEnv))
			}
		}

		if len(pipeline.Triggers.Cron) > 0 {
			cronManager := services.NewCronManager(pipeline.Triggers.Cron, pipelineService, fetcher, pipeline.Dir)
			if err := cronManager.Init(); err != nil {
				return err
			}
			defer cronManager.Stop()
			logger.Log().Info("Cron triggers scheduled", zap.Int("count", len(pipeline.Triggers.Cron)))
		}

		server := web.NewServer(
			apiToken,
			webhookSecret,
			handler.NewHealthHandler(),
			handler.NewPipelineHandler(pipelineService),
			handler.NewRunHandler(pipelineService, runManager),
			handler.NewWebhookHandler(pipelineService, fetcher),
			handler.NewWebsocketHandler(runManager),
		)

		app := server.Initialize()

		signals.SetupSignals(runManager, app, shutdownWait)

		return server.Serve(app, port)
	},
}

func init() {
	ServeCommand.Flags().IntVarP(&port, "port", "p", 8081, "Port to listen on")
	ServeCommand.Flags().IntVar(&shutdownWait, "shutdown-wait", 300, "Seconds to wait for active runs on shutdown")
	ServeCommand.Flags().StringVar(&apiToken, "api-token", "", "Static bearer token guarding the API (empty disables auth)")
	ServeCommand.Flags().BoolVar(&disablePrometheus, "disable-prometheus", false, "Do not register prometheus metrics")

	viper.SetDefault("api.token", "")
}
