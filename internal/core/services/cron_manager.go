package services

import (
	"context"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

type CronManager struct {
	triggers        []*domain.CronTrigger
	pipelineService ports.PipelineServiceInterface
	fetcher         ports.SourceFetcherInterface
	pipelineDir     string
	scheduler       *gocron.Scheduler
}

func NewCronManager(
	triggers []*domain.CronTrigger,
	pipelineService ports.PipelineServiceInterface,
	fetcher ports.SourceFetcherInterface,
	pipelineDir string,
) *CronManager {
	return &CronManager{
		triggers:        triggers,
		pipelineService: pipelineService,
		fetcher:         fetcher,
		pipelineDir:     pipelineDir,
	}
}

func (c *CronManager) Init() error {
	scheduler := gocron.NewScheduler(time.UTC)
	for _, trigger := range c.triggers {
		trigger := trigger
		_, err := scheduler.Cron(trigger.Schedule).Do(func() {
			c.runTrigger(trigger)
		})
		if err != nil {
			return err
		}
	}
	scheduler.StartAsync()
	c.scheduler = scheduler
	return nil
}

func (c *CronManager) runTrigger(trigger *domain.CronTrigger) {
	logger.Log().Info("Cron trigger fired", zap.String("schedule", trigger.Schedule), zap.String("target", trigger.Target))

	// scheduled builds run against a staged copy, a concurrently updated
	// working copy must not change files under a running build
	dir, err := c.fetcher.Stage(c.pipelineDir)
	if err != nil {
		logger.Log().Error("Failed to stage working copy for cron run", zap.Error(err))
		return
	}
	defer c.fetcher.Cleanup(dir)

	var targets []string
	if trigger.Target != "" {
		targets = []string{trigger.Target}
	}

	_, err = c.pipelineService.Run(context.Background(), domain.RunOptions{
		Targets: targets,
		Trigger: domain.RunTriggerCron,
		Dir:     dir,
		Push:    true,
	})

	if err != nil {
		logger.Log().Error("Cron triggered run failed", zap.String("schedule", trigger.Schedule), zap.Error(err))
	}
}

func (c *CronManager) Stop() {
	if c.scheduler != nil {
		c.scheduler.Stop()
	}
}
