package services

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	"github.com/robfig/cron/v3"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

// PipelineService runs the pipeline: resolve ref, derive tags, build, push,
// publish the release manifest. The run itself is strictly linear; the
// daemon achieves concurrency by running each triggered run in its own
// goroutine against this service.
type PipelineService struct {
	pipeline   *domain.Pipeline
	resolver   ports.RefResolverInterface
	tagger     ports.TaggerInterface
	builder    ports.ImageBuilderInterface
	registry   ports.OciRegistryInterface
	runManager ports.RunManagerInterface
	metrics    *RunMetrics
}

func NewPipelineService(
	pipeline *domain.Pipeline,
	resolver ports.RefResolverInterface,
	tagger ports.TaggerInterface,
	builder ports.ImageBuilderInterface,
	registry ports.OciRegistryInterface,
	runManager ports.RunManagerInterface,
	metrics *RunMetrics,
) *PipelineService {
	return &PipelineService{
		pipeline:   pipeline,
		resolver:   resolver,
		tagger:     tagger,
		builder:    builder,
		registry:   registry,
		runManager: runManager,
		metrics:    metrics,
	}
}

func (s *PipelineService) GetPipeline() *domain.Pipeline {
	return s.pipeline
}

// Plan computes what a run would do without side effects.
func (s *PipelineService) Plan(targets []string) (*domain.RunPlan, error) {
	ref, err := s.resolver.Resolve(s.pipeline.Dir)
	if err != nil {
		return nil, err
	}

	selected, err := s.selectTargets(s.pipeline, targets)
	if err != nil {
		return nil, err
	}

	plan := &domain.RunPlan{Ref: *ref}
	for _, target := range selected {
		tags, err := s.tagger.Derive(ref, target.Tags, s.pipeline.DefaultBranch)
		if err != nil {
			return nil, err
		}
		plan.Targets = append(plan.Targets, domain.PlanEntry{
			Target: target.Name,
			Image:  s.pipeline.ImageFor(target),
			Tags:   tags,
		})
	}
	return plan, nil
}

type preparedRun struct {
	pipeline *domain.Pipeline
	dir      string
	targets  []*domain.Target
	ref      *domain.GitRef
	run      *domain.PipelineRun
}

func (s *PipelineService) prepare(opts domain.RunOptions) (*preparedRun, error) {
	pipeline, dir, err := s.pipelineFor(opts)
	if err != nil {
		return nil, err
	}

	selected, err := s.selectTargets(pipeline, opts.Targets)
	if err != nil {
		return nil, err
	}

	ref := opts.Ref
	if ref == nil {
		ref, err = s.resolver.Resolve(dir)
		if err != nil {
			return nil, err
		}
	}

	targetNames := make([]string, 0, len(selected))
	for _, t := range selected {
		targetNames = append(targetNames, t.Name)
	}

	run := s.runManager.Create(pipeline.Name, targetNames, opts.Trigger)
	run.Ref = *ref
	run.Status = domain.RunStatusRunning
	s.runManager.Update(run)

	logger.Log().Info("Run started",
		zap.String("run", run.ID),
		zap.String("ref", ref.Name),
		zap.String("sha", ref.ShortSHA()),
		zap.Strings("targets", targetNames),
	)

	return &preparedRun{
		pipeline: pipeline,
		dir:      dir,
		targets:  selected,
		ref:      ref,
		run:      run,
	}, nil
}

func (s *PipelineService) finish(prep *preparedRun, err error) {
	s.runManager.Finish(prep.run, err)
	s.metrics.ObserveRun(prep.run)

	if err != nil {
		logger.Log().Error("Run failed", zap.String("run", prep.run.ID), zap.Error(err))
		return
	}
	logger.Log().Info("Run succeeded", zap.String("run", prep.run.ID), zap.Strings("images", prep.run.Images))
}

// Run executes the pipeline synchronously. The CLI path.
func (s *PipelineService) Run(ctx context.Context, opts domain.RunOptions) (*domain.PipelineRun, error) {
	prep, err := s.prepare(opts)
	if err != nil {
		return nil, err
	}

	err = s.execute(ctx, prep.pipeline, prep.dir, prep.run, prep.targets, prep.ref, opts)
	s.finish(prep, err)
	return prep.run, err
}

// Start kicks the run off in the background and returns it immediately. The
// daemon path: callers follow progress through the run manager.
func (s *PipelineService) Start(ctx context.Context, opts domain.RunOptions) (*domain.PipelineRun, error) {
	prep, err := s.prepare(opts)
	if err != nil {
		return nil, err
	}

	go func() {
		err := s.execute(ctx, prep.pipeline, prep.dir, prep.run, prep.targets, prep.ref, opts)
		s.finish(prep, err)
	}()

	return prep.run, nil
}

func (s *PipelineService) execute(
	ctx context.Context,
	pipeline *domain.Pipeline,
	dir string,
	run *domain.PipelineRun,
	targets []*domain.Target,
	ref *domain.GitRef,
	opts domain.RunOptions,
) error {

	release := domain.ReleaseManifest{
		Name:      pipeline.Name,
		Ref:       *ref,
		CreatedAt: time.Now().UTC(),
	}
	if pipeline.Version != nil {
		release.Version = pipeline.Version.String()
	}

	for _, target := range targets {
		tags, err := s.tagger.Derive(ref, target.Tags, pipeline.DefaultBranch)
		if err != nil {
			return err
		}

		image := pipeline.ImageFor(target)
		imageRefs := make([]string, 0, len(tags))
		for _, tag := range tags {
			imageRefs = append(imageRefs, image+":"+tag)
		}

		run.Tags = append(run.Tags, tags...)
		run.Images = append(run.Images, imageRefs...)
		s.runManager.Update(run)

		if opts.DryRun {
			s.runManager.AppendLog(run.ID, fmt.Sprintf("dry-run: would build %s", strings.Join(imageRefs, ", ")))
			continue
		}

		buildOpts := domain.BuildOptions{
			Dockerfile: target.DockerfilePath(dir),
			ContextDir: target.ContextDir(dir),
			Tags:       imageRefs,
			BuildArgs:  target.BuildArgs,
			Labels:     s.ociLabels(pipeline, ref, target, release.CreatedAt),
		}

		onLine := func(line string) {
			s.runManager.AppendLog(run.ID, line)
			logger.Log().LogBuildOutput(target.Name, line)
		}

		if err := s.builder.Build(ctx, buildOpts, onLine); err != nil {
			return err
		}
		s.metrics.ObserveBuild(target.Name)

		releaseImage := domain.ReleaseImage{
			Target: target.Name,
			Repo:   image,
			Tags:   tags,
		}

		if opts.Push {
			for _, imageRef := range imageRefs {
				pushLine := func(line string) {
					s.runManager.AppendLog(run.ID, line)
					logger.Log().LogBuildOutput(target.Name, line)
					if d := parsePushedDigest(line); d != "" {
						releaseImage.Digest = d
					}
				}
				if err := s.builder.Push(ctx, imageRef, pushLine); err != nil {
					return err
				}
			}
		}

		release.Images = append(release.Images, releaseImage)
	}

	if pipeline.Release.Publish && opts.Push && !opts.DryRun {
		if err := s.publishRelease(pipeline, ref, &release); err != nil {
			return err
		}
	}

	return nil
}

func (s *PipelineService) publishRelease(pipeline *domain.Pipeline, ref *domain.GitRef, release *domain.ReleaseManifest) error {
	dir, err := os.MkdirTemp("", "stevedore-release-")
	if err != nil {
		return err
	}
	defer os.RemoveAll(dir)

	payload, err := json.MarshalIndent(release, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "release.json"), payload, 0644); err != nil {
		return err
	}

	tag := releaseTag(ref)

	info := domain.AnnotationInfo{
		Revision: ref.SHA,
		Version:  release.Version,
		Extra:    pipeline.Release.Annotations,
	}

	desc, err := s.registry.PushRelease(dir, pipeline.ReleaseRepo(), tag, info)
	if err != nil {
		return fmt.Errorf("failed to publish release manifest: %w", err)
	}

	logger.Log().Info("Release manifest published",
		zap.String("repo", pipeline.ReleaseRepo()),
		zap.String("tag", tag),
		zap.String("digest", desc.Digest.String()),
	)
	return nil
}

func (s *PipelineService) pipelineFor(opts domain.RunOptions) (*domain.Pipeline, string, error) {
	if opts.Dir == "" {
		return s.pipeline, s.pipeline.Dir, nil
	}

	// fetched checkouts carry their own pipeline file when present
	pipeline, err := domain.NewPipeline(opts.Dir)
	if err == nil {
		if err := ValidatePipeline(pipeline); err != nil {
			return nil, "", err
		}
		return pipeline, opts.Dir, nil
	}
	if err != domain.ErrPipelineDoesNotExist {
		return nil, "", err
	}

	clone := *s.pipeline
	clone.Dir = opts.Dir
	return &clone, opts.Dir, nil
}

func (s *PipelineService) selectTargets(pipeline *domain.Pipeline, names []string) ([]*domain.Target, error) {
	if len(names) == 0 {
		return pipeline.Targets, nil
	}
	targets := make([]*domain.Target, 0, len(names))
	for _, name := range names {
		target, err := pipeline.Target(name)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, nil
}

func (s *PipelineService) ociLabels(pipeline *domain.Pipeline, ref *domain.GitRef, target *domain.Target, created time.Time) map[string]string {
	labels := map[string]string{
		"org.opencontainers.image.revision": ref.SHA,
		"org.opencontainers.image.created":  created.Format(time.RFC3339),
	}
	if pipeline.Version != nil {
		labels["org.opencontainers.image.version"] = pipeline.Version.String()
	}
	for k, v := range target.Labels {
		labels[k] = v
	}
	return labels
}

// releaseTag names the release manifest after the ref that produced it.
func releaseTag(ref *domain.GitRef) string {
	if ref.IsTag() {
		return ref.Name
	}
	return ref.ShortSHA()
}

// parsePushedDigest extracts the manifest digest from docker push output
// lines of the form "latest: digest: sha256:... size: 1234".
func parsePushedDigest(line string) digest.Digest {
	idx := strings.Index(line, "digest: ")
	if idx < 0 {
		return ""
	}
	rest := line[idx+len("digest: "):]
	fields := strings.Fields(rest)
	if len(fields) == 0 {
		return ""
	}
	d, err := digest.Parse(fields[0])
	if err != nil {
		return ""
	}
	return d
}

// ValidatePipeline rejects pipeline files the orchestrator cannot act on.
func ValidatePipeline(p *domain.Pipeline) error {
	if p.Name == "" {
		return fmt.Errorf("pipeline name must be set")
	}
	if p.Registry.Repo == "" {
		return fmt.Errorf("registry.repo must be set")
	}
	if len(p.Targets) == 0 {
		return fmt.Errorf("pipeline must define at least one target")
	}

	seen := map[string]bool{}
	for _, target := range p.Targets {
		if target.Name == "" && len(p.Targets) > 1 {
			return fmt.Errorf("targets must be named when more than one is defined")
		}
		if seen[target.Name] {
			return fmt.Errorf("duplicate target name %q", target.Name)
		}
		seen[target.Name] = true

		switch target.Tags.Latest {
		case "", domain.LatestAuto, domain.LatestAlways, domain.LatestNever:
		default:
			return fmt.Errorf("target %q: invalid latest mode %q", target.Name, target.Tags.Latest)
		}
	}

	for _, trigger := range p.Triggers.Cron {
		if _, err := cron.ParseStandard(trigger.Schedule); err != nil {
			return fmt.Errorf("invalid cron schedule %q: %w", trigger.Schedule, err)
		}
		if trigger.Target != "" {
			if _, err := p.Target(trigger.Target); err != nil {
				return err
			}
		}
	}

	return nil
}
