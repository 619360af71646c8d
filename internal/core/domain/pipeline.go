package domain

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	semver "github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v2"
)

const PipelineFileName = "stevedore.yaml"

type LatestMode string

const (
	LatestAuto   LatestMode = "auto"
	LatestAlways LatestMode = "always"
	LatestNever  LatestMode = "never"
)

// TagPolicy controls how tags are derived from a resolved ref.
type TagPolicy struct {
	Template      string     `yaml:"template,omitempty" json:"template,omitempty"`
	SemverAliases bool       `yaml:"semver_aliases" json:"semver_aliases"`
	Latest        LatestMode `yaml:"latest,omitempty" json:"latest,omitempty"`
} // @name TagPolicy

type Target struct {
	Name       string            `yaml:"name" json:"name"`
	Image      string            `yaml:"image,omitempty" json:"image,omitempty"`
	Dockerfile string            `yaml:"dockerfile,omitempty" json:"dockerfile,omitempty"`
	Context    string            `yaml:"context,omitempty" json:"context,omitempty"`
	BuildArgs  map[string]string `yaml:"build_args,omitempty" json:"build_args,omitempty"`
	Labels     map[string]string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Tags       TagPolicy         `yaml:"tags" json:"tags"`
} // @name Target

type Registry struct {
	Host string `yaml:"host" json:"host"`
	Repo string `yaml:"repo" json:"repo"`
} // @name Registry

type CronTrigger struct {
	Schedule string `yaml:"schedule" json:"schedule"`
	Target   string `yaml:"target,omitempty" json:"target,omitempty"`
} // @name CronTrigger

type WebhookTrigger struct {
	// SecretEnv names the environment variable holding the shared webhook
	// secret. The secret itself never appears in the pipeline file.
	SecretEnv string `yaml:"secret_env" json:"secret_env"`
} // @name WebhookTrigger

type Triggers struct {
	Webhook *WebhookTrigger `yaml:"webhook,omitempty" json:"webhook,omitempty"`
	Cron    []*CronTrigger  `yaml:"cron,omitempty" json:"cron,omitempty"`
} // @name Triggers

type ReleaseConfig struct {
	Publish     bool              `yaml:"publish" json:"publish"`
	Annotations map[string]string `yaml:"annotations,omitempty" json:"annotations,omitempty"`
} // @name ReleaseConfig

type File struct {
	Name          string          `yaml:"name" json:"name"`
	Desc          string          `yaml:"desc,omitempty" json:"desc,omitempty"`
	Version       *semver.Version `yaml:"version" json:"version"`
	DefaultBranch string          `yaml:"default_branch,omitempty" json:"default_branch,omitempty"`
	Registry      Registry        `yaml:"registry" json:"registry"`
	Targets       []*Target       `yaml:"targets" json:"targets"`
	Triggers      Triggers        `yaml:"triggers,omitempty" json:"triggers,omitempty"`
	Release       ReleaseConfig   `yaml:"release,omitempty" json:"release,omitempty"`
} // @name PipelineFile

type Pipeline struct {
	File
	Dir string `yaml:"-" json:"-"`
} // @name Pipeline

func NewPipeline(dir string) (*Pipeline, error) {

	filePath := filepath.Join(dir, PipelineFileName)

	yamlFile, err := os.Open(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPipelineDoesNotExist
		}
		return nil, fmt.Errorf("failed to open %s - %w", PipelineFileName, err)
	}
	defer yamlFile.Close()
	file, err := io.ReadAll(yamlFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s - %w", PipelineFileName, err)
	}
	pipeline := Pipeline{Dir: dir}
	if _, err = pipeline.ParseFile(file); err != nil {
		return nil, err
	}
	return &pipeline, nil
}

func (p *Pipeline) ParseFile(file []byte) (*Pipeline, error) {
	valueReplaced := os.ExpandEnv(string(file))

	var f File
	err := yaml.Unmarshal([]byte(valueReplaced), &f)
	if err != nil {
		return nil, err
	}

	p.File = f
	return p, nil
}

func (p *Pipeline) Target(name string) (*Target, error) {
	if name == "" && len(p.Targets) == 1 {
		return p.Targets[0], nil
	}
	for _, t := range p.Targets {
		if t.Name == name {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, name)
}

// ImageFor returns the tag-less image reference a target publishes to.
// A single-target pipeline publishes straight to <host>/<repo>, additional
// targets get a -<name> suffix unless they carry an explicit image.
func (p *Pipeline) ImageFor(t *Target) string {
	if t.Image != "" {
		return t.Image
	}
	base := p.Registry.Repo
	if p.Registry.Host != "" {
		base = p.Registry.Host + "/" + p.Registry.Repo
	}
	if len(p.Targets) <= 1 {
		return base
	}
	return base + "-" + t.Name
}

// ReleaseRepo is the OCI repository release manifests are published under.
func (p *Pipeline) ReleaseRepo() string {
	if p.Registry.Host == "" {
		return p.Registry.Repo + "-release"
	}
	return p.Registry.Host + "/" + p.Registry.Repo + "-release"
}

func (t *Target) DockerfilePath(dir string) string {
	df := t.Dockerfile
	if df == "" {
		df = "Dockerfile"
	}
	return filepath.Join(dir, df)
}

func (t *Target) ContextDir(dir string) string {
	if t.Context == "" {
		return dir
	}
	return filepath.Join(dir, t.Context)
}
