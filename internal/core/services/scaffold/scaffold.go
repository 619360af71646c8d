package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
)

//go:embed templates
var templates embed.FS

// Data feeds the scaffolding templates.
type Data struct {
	Name          string
	RegistryHost  string
	RegistryRepo  string
	DefaultBranch string
}

// outputs maps template files to the files `stevedore init` writes. The
// workflow template uses [[ ]] delimiters because GitHub Actions claims the
// ${{ }} syntax for itself.
var outputs = []struct {
	template string
	output   string
	delims   [2]string
}{
	{"templates/stevedore.yaml.tmpl", "stevedore.yaml", [2]string{"{{", "}}"}},
	{"templates/Dockerfile.tmpl", "Dockerfile", [2]string{"{{", "}}"}},
	{"templates/workflow.yml.tmpl", filepath.Join(".github", "workflows", "publish.yml"), [2]string{"[[", "]]"}},
}

type Scaffolder struct{}

func NewScaffolder() *Scaffolder {
	return &Scaffolder{}
}

// Render writes the starter files into dir. Existing files are only replaced
// when force is set.
func (s *Scaffolder) Render(dir string, data Data, force bool) ([]string, error) {
	if data.DefaultBranch == "" {
		data.DefaultBranch = "main"
	}

	var written []string
	for _, out := range outputs {
		target := filepath.Join(dir, out.output)

		if !force {
			if _, err := os.Stat(target); err == nil {
				return written, fmt.Errorf("%s already exists, use --force to overwrite", out.output)
			}
		}

		content, err := templates.ReadFile(out.template)
		if err != nil {
			return written, err
		}

		tmpl, err := template.New(filepath.Base(out.template)).
			Delims(out.delims[0], out.delims[1]).
			Funcs(sprig.TxtFuncMap()).
			Parse(string(content))
		if err != nil {
			return written, err
		}

		var rendered bytes.Buffer
		if err := tmpl.Execute(&rendered, data); err != nil {
			return written, err
		}

		if err := os.MkdirAll(filepath.Dir(target), os.ModePerm); err != nil {
			return written, err
		}
		if err := os.WriteFile(target, rendered.Bytes(), 0644); err != nil {
			return written, err
		}
		written = append(written, out.output)
	}

	return written, nil
}
