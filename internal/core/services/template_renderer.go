package services

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Masterminds/sprig"
)

type TemplateRenderer struct{}

func NewTemplateRenderer() *TemplateRenderer {
	return &TemplateRenderer{}
}

func (tr *TemplateRenderer) RenderTemplate(templateContent string, data interface{}) (string, error) {
	tmpl, err := template.New("stevedore_template").Funcs(sprig.TxtFuncMap()).Parse(templateContent)
	if err != nil {
		return "", err
	}

	var tpl bytes.Buffer
	err = tmpl.Execute(&tpl, data)

	if err != nil {
		return "", err
	}

	return tpl.String(), err
}

func (tr *TemplateRenderer) RenderTemplateFile(templatePath string, data interface{}, outputPath string) error {
	content, err := os.ReadFile(templatePath)
	if err != nil {
		return err
	}

	rendered, err := tr.RenderTemplate(string(content), data)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), os.ModePerm); err != nil {
		return err
	}

	return os.WriteFile(outputPath, []byte(rendered), 0644)
}
