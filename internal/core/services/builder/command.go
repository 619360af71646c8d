package builder

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
)

// CommandRunner abstracts child process execution so the docker CLI can be
// faked in tests.
type CommandRunner interface {
	Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error)
	RunStream(ctx context.Context, onLine func(string), name string, args ...string) error
}

type ExecCommandRunner struct{}

var _ CommandRunner = &ExecCommandRunner{}

func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{}
}

func (r *ExecCommandRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if stdin != nil {
		cmd.Stdin = stdin
	}
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// RunStream forwards combined output line by line while the command runs.
func (r *ExecCommandRunner) RunStream(ctx context.Context, onLine func(string), name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return err
	}
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		return err
	}

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var tail []string
	for scanner.Scan() {
		line := scanner.Text()
		tail = append(tail, line)
		if len(tail) > 20 {
			tail = tail[1:]
		}
		if onLine != nil {
			onLine(line)
		}
	}

	if err := cmd.Wait(); err != nil {
		if len(tail) > 0 {
			return errors.New(err.Error() + ": " + strings.Join(tail, "\n"))
		}
		return err
	}
	return scanner.Err()
}

// FakeCommandRunner records invocations and replays canned output. Test use only.
type FakeCommandRunner struct {
	Calls  [][]string
	Stdins []string
	Output string
	Err    error
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) Run(ctx context.Context, stdin io.Reader, name string, args ...string) (string, error) {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	var in string
	if stdin != nil {
		b, _ := io.ReadAll(stdin)
		in = string(b)
	}
	f.Stdins = append(f.Stdins, in)
	return f.Output, f.Err
}

func (f *FakeCommandRunner) RunStream(ctx context.Context, onLine func(string), name string, args ...string) error {
	f.Calls = append(f.Calls, append([]string{name}, args...))
	f.Stdins = append(f.Stdins, "")
	if onLine != nil && f.Output != "" {
		for _, line := range strings.Split(strings.TrimRight(f.Output, "\n"), "\n") {
			onLine(line)
		}
	}
	return f.Err
}
