package ports

import (
	"context"

	v1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"go.uber.org/zap/zapcore"
)

type LogDriverInterface interface {
	Info(msg string, fields ...zapcore.Field)
	Debug(msg string, fields ...zapcore.Field)
	Warn(msg string, fields ...zapcore.Field)
	Error(msg string, fields ...zapcore.Field)
	LogBuildOutput(target string, data string)
}

type RefResolverInterface interface {
	Resolve(dir string) (*domain.GitRef, error)
}

type TaggerInterface interface {
	Derive(ref *domain.GitRef, policy domain.TagPolicy, defaultBranch string) ([]string, error)
}

type ImageBuilderInterface interface {
	Version(ctx context.Context) (string, error)
	Build(ctx context.Context, opts domain.BuildOptions, onLine func(string)) error
	Push(ctx context.Context, image string, onLine func(string)) error
	Login(ctx context.Context, host string, user string, password string) error
}

type OciRegistryInterface interface {
	PushRelease(dir string, repo string, tag string, info domain.AnnotationInfo) (v1.Descriptor, error)
	Tags(repo string) ([]string, error)
	ResolveTag(repo string, tag string) (*v1.Descriptor, error)
	TagExists(repo string, tag string) (bool, error)
}

type PipelineServiceInterface interface {
	GetPipeline() *domain.Pipeline
	Plan(targets []string) (*domain.RunPlan, error)
	Run(ctx context.Context, opts domain.RunOptions) (*domain.PipelineRun, error)
	Start(ctx context.Context, opts domain.RunOptions) (*domain.PipelineRun, error)
}

type RunManagerInterface interface {
	Create(pipeline string, targets []string, trigger domain.RunTrigger) *domain.PipelineRun
	Get(id string) (*domain.PipelineRun, error)
	List() []*domain.PipelineRun
	Update(run *domain.PipelineRun)
	Finish(run *domain.PipelineRun, err error)
	AppendLog(id string, line string)
	GetLog(id string) ([]string, error)
	Subscribe(id string) (chan *[]byte, error)
	Unsubscribe(id string, subscription chan *[]byte)
	ActiveCount() int
}

type SourceFetcherInterface interface {
	Fetch(ctx context.Context, src string, sha string) (string, error)
	Stage(dir string) (string, error)
	Cleanup(dir string) error
}

type TemplateRendererInterface interface {
	RenderTemplate(templateContent string, data interface{}) (string, error)
	RenderTemplateFile(templatePath string, data interface{}, outputPath string) error
}

type CronManagerInterface interface {
	Init() error
	Stop()
}
