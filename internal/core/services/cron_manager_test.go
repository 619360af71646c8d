package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stevedore-dev/stevedore/internal/core/domain"
	mock_ports "github.com/stevedore-dev/stevedore/test/mock"
	"go.uber.org/mock/gomock"
)

func TestCronManager_RunTrigger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineService := mock_ports.NewMockPipelineServiceInterface(ctrl)
	fetcher := mock_ports.NewMockSourceFetcherInterface(ctrl)

	fetcher.EXPECT().Stage("/work/example").Return("/tmp/staged", nil)
	fetcher.EXPECT().Cleanup("/tmp/staged").Return(nil)
	pipelineService.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts domain.RunOptions) (*domain.PipelineRun, error) {
			if opts.Trigger != domain.RunTriggerCron {
				t.Errorf("Expected cron trigger, got %s", opts.Trigger)
			}
			if opts.Dir != "/tmp/staged" {
				t.Errorf("Expected run against the staged copy, got %s", opts.Dir)
			}
			if len(opts.Targets) != 1 || opts.Targets[0] != "app" {
				t.Errorf("Expected trigger target, got %v", opts.Targets)
			}
			if !opts.Push {
				t.Error("Expected cron runs to push")
			}
			return &domain.PipelineRun{ID: "run-1"}, nil
		})

	manager := NewCronManager(nil, pipelineService, fetcher, "/work/example")
	manager.runTrigger(&domain.CronTrigger{Schedule: "0 4 * * *", Target: "app"})
}

func TestCronManager_RunTrigger_StageFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	pipelineService := mock_ports.NewMockPipelineServiceInterface(ctrl)
	fetcher := mock_ports.NewMockSourceFetcherInterface(ctrl)

	fetcher.EXPECT().Stage("/work/example").Return("", errors.New("disk full"))
	// No run without a staged copy.

	manager := NewCronManager(nil, pipelineService, fetcher, "/work/example")
	manager.runTrigger(&domain.CronTrigger{Schedule: "0 4 * * *"})
}
