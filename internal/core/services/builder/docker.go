package builder

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"

	"github.com/stevedore-dev/stevedore/internal/core/domain"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

// DockerCli drives the docker binary. Engine internals stay external, the
// orchestrator only assembles arguments and interprets exit codes.
type DockerCli struct {
	runner CommandRunner
	binary string
}

func NewDockerCli(runner CommandRunner) *DockerCli {
	return &DockerCli{
		runner: runner,
		binary: "docker",
	}
}

func (d *DockerCli) Version(ctx context.Context) (string, error) {
	out, err := d.runner.Run(ctx, nil, d.binary, "version", "--format", "{{.Client.Version}}")
	if err != nil {
		return "", d.wrap(err, out)
	}
	return strings.TrimSpace(out), nil
}

func (d *DockerCli) Build(ctx context.Context, opts domain.BuildOptions, onLine func(string)) error {
	if len(opts.Tags) == 0 {
		return fmt.Errorf("no tags to build")
	}

	args := []string{"build", "-f", opts.Dockerfile}
	for _, tag := range opts.Tags {
		args = append(args, "-t", tag)
	}
	for _, k := range sortedKeys(opts.BuildArgs) {
		args = append(args, "--build-arg", fmt.Sprintf("%s=%s", k, opts.BuildArgs[k]))
	}
	for _, k := range sortedKeys(opts.Labels) {
		args = append(args, "--label", fmt.Sprintf("%s=%s", k, opts.Labels[k]))
	}
	args = append(args, opts.ContextDir)

	logger.Log().Info("Building image", zap.Strings("tags", opts.Tags), zap.String("context", opts.ContextDir))

	if err := d.runner.RunStream(ctx, onLine, d.binary, args...); err != nil {
		return d.wrap(fmt.Errorf("docker build failed: %w", err), "")
	}
	return nil
}

func (d *DockerCli) Push(ctx context.Context, image string, onLine func(string)) error {
	logger.Log().Info("Pushing image", zap.String("image", image))

	if err := d.runner.RunStream(ctx, onLine, d.binary, "push", image); err != nil {
		return d.wrap(fmt.Errorf("docker push of %s failed: %w", image, err), "")
	}
	return nil
}

// Login feeds the password over stdin so it never shows up in the process list.
func (d *DockerCli) Login(ctx context.Context, host string, user string, password string) error {
	out, err := d.runner.Run(ctx, strings.NewReader(password), d.binary, "login", host, "--username", user, "--password-stdin")
	if err != nil {
		return d.wrap(fmt.Errorf("docker login to %s failed: %w", host, err), out)
	}
	return nil
}

func (d *DockerCli) wrap(err error, out string) error {
	var execErr *exec.Error
	if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
		return domain.ErrDockerNotFound
	}
	out = strings.TrimSpace(out)
	if out != "" {
		return fmt.Errorf("%w: %s", err, out)
	}
	return err
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
