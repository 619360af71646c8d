package services

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	v1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/services/tagger"
	mock_ports "github.com/stevedore-dev/stevedore/test/mock"
	"go.uber.org/mock/gomock"
)

const testSHA = "0123456789abcdef0123456789abcdef01234567"

const testDigest = "sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"

// PipelineTestContext holds the mocked collaborators for pipeline service testing
type PipelineTestContext struct {
	Ctrl       *gomock.Controller
	Resolver   *mock_ports.MockRefResolverInterface
	Builder    *mock_ports.MockImageBuilderInterface
	Registry   *mock_ports.MockOciRegistryInterface
	RunManager *RunManager
	Service    *PipelineService
}

func setupPipelineTest(t *testing.T, pipeline *domain.Pipeline) *PipelineTestContext {
	ctrl := gomock.NewController(t)

	resolver := mock_ports.NewMockRefResolverInterface(ctrl)
	builder := mock_ports.NewMockImageBuilderInterface(ctrl)
	registry := mock_ports.NewMockOciRegistryInterface(ctrl)
	runManager := NewRunManager()

	service := NewPipelineService(
		pipeline,
		resolver,
		tagger.NewTagger(nil),
		builder,
		registry,
		runManager,
		NewRunMetrics(false),
	)

	return &PipelineTestContext{
		Ctrl:       ctrl,
		Resolver:   resolver,
		Builder:    builder,
		Registry:   registry,
		RunManager: runManager,
		Service:    service,
	}
}

func testPipeline() *domain.Pipeline {
	return &domain.Pipeline{
		File: domain.File{
			Name:          "example",
			DefaultBranch: "main",
			Registry:      domain.Registry{Host: "registry-1.docker.io", Repo: "example/app"},
			Targets: []*domain.Target{
				{Name: "app"},
			},
		},
		Dir: "/work/example",
	}
}

func branchRef() *domain.GitRef {
	return &domain.GitRef{Type: domain.RefTypeBranch, Name: "main", SHA: testSHA}
}

func TestPipelineService_Plan(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").Return(branchRef(), nil)

	plan, err := tc.Service.Plan(nil)
	if err != nil {
		t.Fatalf("Plan returned error: %v", err)
	}

	if len(plan.Targets) != 1 {
		t.Fatalf("Expected 1 plan entry, got %d", len(plan.Targets))
	}
	entry := plan.Targets[0]
	if entry.Image != "registry-1.docker.io/example/app" {
		t.Errorf("Expected image registry-1.docker.io/example/app, got %s", entry.Image)
	}
	if len(entry.Tags) != 2 || entry.Tags[0] != "main-0123456" || entry.Tags[1] != "edge" {
		t.Errorf("Expected branch tags, got %v", entry.Tags)
	}
}

func TestPipelineService_Run_DryRun(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").Return(branchRef(), nil)
	// No builder or registry expectations: a dry run has no side effects.

	run, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerCli,
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if run.Status != domain.RunStatusSucceeded {
		t.Errorf("Expected succeeded status, got %s", run.Status)
	}
	if len(run.Images) != 2 {
		t.Errorf("Expected 2 planned image refs, got %v", run.Images)
	}

	lines, _ := tc.RunManager.GetLog(run.ID)
	if len(lines) != 1 || lines[0] != "dry-run: would build registry-1.docker.io/example/app:main-0123456, registry-1.docker.io/example/app:edge" {
		t.Errorf("Expected dry-run log line, got %v", lines)
	}
}

func TestPipelineService_Run_BuildOnly(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").Return(branchRef(), nil)

	tc.Builder.EXPECT().
		Build(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, opts domain.BuildOptions, onLine func(string)) error {
			if len(opts.Tags) != 2 {
				t.Errorf("Expected 2 image refs, got %v", opts.Tags)
			}
			if opts.Dockerfile != "/work/example/Dockerfile" {
				t.Errorf("Expected default Dockerfile path, got %s", opts.Dockerfile)
			}
			if opts.Labels["org.opencontainers.image.revision"] != testSHA {
				t.Errorf("Expected revision label, got %v", opts.Labels)
			}
			onLine("Step 1/4")
			return nil
		})

	run, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerCli,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if run.Status != domain.RunStatusSucceeded {
		t.Errorf("Expected succeeded status, got %s", run.Status)
	}

	lines, _ := tc.RunManager.GetLog(run.ID)
	if len(lines) != 1 || lines[0] != "Step 1/4" {
		t.Errorf("Expected build output in run log, got %v", lines)
	}
}

func TestPipelineService_Run_PushAndRelease(t *testing.T) {
	pipeline := testPipeline()
	pipeline.Release = domain.ReleaseConfig{Publish: true}

	tc := setupPipelineTest(t, pipeline)
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").Return(branchRef(), nil)
	tc.Builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// One push per derived tag, docker reporting the manifest digest.
	tc.Builder.EXPECT().
		Push(gomock.Any(), "registry-1.docker.io/example/app:main-0123456", gomock.Any()).
		DoAndReturn(func(ctx context.Context, image string, onLine func(string)) error {
			onLine("main-0123456: digest: " + testDigest + " size: 529")
			return nil
		})
	tc.Builder.EXPECT().
		Push(gomock.Any(), "registry-1.docker.io/example/app:edge", gomock.Any()).
		Return(nil)

	tc.Registry.EXPECT().
		PushRelease(gomock.Any(), "registry-1.docker.io/example/app-release", "0123456", gomock.Any()).
		DoAndReturn(func(dir, repo, tag string, info domain.AnnotationInfo) (v1.Descriptor, error) {
			if info.Revision != testSHA {
				t.Errorf("Expected revision annotation %s, got %s", testSHA, info.Revision)
			}

			// The staged release.json carries the pushed digest.
			payload, err := os.ReadFile(filepath.Join(dir, "release.json"))
			if err != nil {
				t.Fatalf("Failed to read staged release manifest: %v", err)
			}
			var manifest domain.ReleaseManifest
			if err := json.Unmarshal(payload, &manifest); err != nil {
				t.Fatalf("Failed to unmarshal release manifest: %v", err)
			}
			if len(manifest.Images) != 1 {
				t.Fatalf("Expected 1 release image, got %d", len(manifest.Images))
			}
			if manifest.Images[0].Digest.String() != testDigest {
				t.Errorf("Expected digest %s, got %s", testDigest, manifest.Images[0].Digest)
			}
			return v1.Descriptor{}, nil
		})

	run, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerCli,
		Push:    true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if run.Status != domain.RunStatusSucceeded {
		t.Errorf("Expected succeeded status, got %s", run.Status)
	}
}

func TestPipelineService_Run_ReleaseTagForTags(t *testing.T) {
	pipeline := testPipeline()
	pipeline.Release = domain.ReleaseConfig{Publish: true}

	tc := setupPipelineTest(t, pipeline)
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").
		Return(&domain.GitRef{Type: domain.RefTypeTag, Name: "v1.2.3", SHA: testSHA}, nil)
	tc.Builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tc.Builder.EXPECT().Push(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	// Tag refs publish the release manifest under the tag name itself.
	tc.Registry.EXPECT().
		PushRelease(gomock.Any(), "registry-1.docker.io/example/app-release", "v1.2.3", gomock.Any()).
		Return(v1.Descriptor{}, nil)

	_, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerCli,
		Push:    true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}

func TestPipelineService_Run_BuildFailureShortCircuits(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	tc.Resolver.EXPECT().Resolve("/work/example").Return(branchRef(), nil)
	tc.Builder.EXPECT().Build(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("docker build failed"))
	// No pushes after a failed build.

	run, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerCli,
		Push:    true,
	})
	if err == nil {
		t.Fatal("Expected error")
	}
	if run.Status != domain.RunStatusFailed {
		t.Errorf("Expected failed status, got %s", run.Status)
	}
	if run.Error != "docker build failed" {
		t.Errorf("Expected error recorded on run, got %q", run.Error)
	}
}

func TestPipelineService_Run_UnknownTarget(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	_, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Targets: []string{"ghost"},
	})
	if !errors.Is(err, domain.ErrTargetNotFound) {
		t.Errorf("Expected ErrTargetNotFound, got %v", err)
	}

	// Nothing should have been recorded.
	if len(tc.RunManager.List()) != 0 {
		t.Error("Expected no run to be created")
	}
}

func TestPipelineService_Run_ExplicitRefSkipsResolver(t *testing.T) {
	tc := setupPipelineTest(t, testPipeline())
	defer tc.Ctrl.Finish()

	run, err := tc.Service.Run(context.Background(), domain.RunOptions{
		Trigger: domain.RunTriggerWebhook,
		Ref:     branchRef(),
		DryRun:  true,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if run.Ref.Name != "main" {
		t.Errorf("Expected run to carry the provided ref, got %s", run.Ref.Name)
	}
}

func TestValidatePipeline(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Pipeline)
		wantErr bool
	}{
		{
			name:    "valid pipeline",
			mutate:  func(p *domain.Pipeline) {},
			wantErr: false,
		},
		{
			name:    "missing name",
			mutate:  func(p *domain.Pipeline) { p.Name = "" },
			wantErr: true,
		},
		{
			name:    "missing registry repo",
			mutate:  func(p *domain.Pipeline) { p.Registry.Repo = "" },
			wantErr: true,
		},
		{
			name:    "no targets",
			mutate:  func(p *domain.Pipeline) { p.Targets = nil },
			wantErr: true,
		},
		{
			name: "duplicate target names",
			mutate: func(p *domain.Pipeline) {
				p.Targets = append(p.Targets, &domain.Target{Name: "app"})
			},
			wantErr: true,
		},
		{
			name: "unnamed target in multi-target pipeline",
			mutate: func(p *domain.Pipeline) {
				p.Targets = append(p.Targets, &domain.Target{})
			},
			wantErr: true,
		},
		{
			name: "invalid latest mode",
			mutate: func(p *domain.Pipeline) {
				p.Targets[0].Tags.Latest = "sometimes"
			},
			wantErr: true,
		},
		{
			name: "valid cron trigger",
			mutate: func(p *domain.Pipeline) {
				p.Triggers.Cron = []*domain.CronTrigger{{Schedule: "0 4 * * *"}}
			},
			wantErr: false,
		},
		{
			name: "invalid cron schedule",
			mutate: func(p *domain.Pipeline) {
				p.Triggers.Cron = []*domain.CronTrigger{{Schedule: "not a schedule"}}
			},
			wantErr: true,
		},
		{
			name: "cron trigger names unknown target",
			mutate: func(p *domain.Pipeline) {
				p.Triggers.Cron = []*domain.CronTrigger{{Schedule: "0 4 * * *", Target: "ghost"}}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pipeline := testPipeline()
			tt.mutate(pipeline)

			err := ValidatePipeline(pipeline)
			if tt.wantErr && err == nil {
				t.Error("Expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected pipeline to validate, got %v", err)
			}
		})
	}
}
