package cmd

import (
	"github.com/spf13/viper"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/services"
	"github.com/stevedore-dev/stevedore/internal/core/services/builder"
	"github.com/stevedore-dev/stevedore/internal/core/services/gitref"
	"github.com/stevedore-dev/stevedore/internal/core/services/registry"
	"github.com/stevedore-dev/stevedore/internal/core/services/tagger"
)

// newOciClient reads the credentials `stevedore login` stored.
func newOciClient() *registry.OciClient {
	host := viper.GetString("registry.host")
	user := viper.GetString("registry.user")
	password := viper.GetString("registry.password")
	return registry.NewOciClient(host, user, password)
}

// newPipelineService wires the full service graph for CLI runs. The daemon
// does its own wiring in serve.go because it shares the run manager with the
// API handlers.
func newPipelineService(dir string, runManager *services.RunManager, metrics *services.RunMetrics) (*services.PipelineService, *domain.Pipeline, error) {
	pipeline, err := domain.NewPipeline(dir)
	if err != nil {
		return nil, nil, err
	}
	if err := services.ValidatePipeline(pipeline); err != nil {
		return nil, nil, err
	}

	if runManager == nil {
		runManager = services.NewRunManager()
	}
	if metrics == nil {
		metrics = services.NewRunMetrics(false)
	}

	pipelineService := services.NewPipelineService(
		pipeline,
		gitref.NewResolver(),
		tagger.NewTagger(services.NewTemplateRenderer()),
		builder.NewDockerCli(builder.NewExecCommandRunner()),
		newOciClient(),
		runManager,
		metrics,
	)

	return pipelineService, pipeline, nil
}
