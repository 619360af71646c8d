package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testData() Data {
	return Data{
		Name:         "example",
		RegistryHost: "registry-1.docker.io",
		RegistryRepo: "example/app",
	}
}

func TestScaffolder_Render(t *testing.T) {
	dir := t.TempDir()

	written, err := NewScaffolder().Render(dir, testData(), false)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	if len(written) != 3 {
		t.Fatalf("Expected 3 files, got %v", written)
	}

	pipeline, err := os.ReadFile(filepath.Join(dir, "stevedore.yaml"))
	if err != nil {
		t.Fatalf("Expected stevedore.yaml to exist: %v", err)
	}
	if !strings.Contains(string(pipeline), "name: example") {
		t.Errorf("Expected pipeline to carry the project name, got:\n%s", pipeline)
	}
	if !strings.Contains(string(pipeline), "repo: example/app") {
		t.Errorf("Expected pipeline to carry the registry repo, got:\n%s", pipeline)
	}

	if _, err := os.Stat(filepath.Join(dir, "Dockerfile")); err != nil {
		t.Errorf("Expected Dockerfile to exist: %v", err)
	}

	workflow, err := os.ReadFile(filepath.Join(dir, ".github", "workflows", "publish.yml"))
	if err != nil {
		t.Fatalf("Expected workflow to exist: %v", err)
	}

	// GitHub Actions expressions must survive rendering untouched.
	if !strings.Contains(string(workflow), "${{ secrets.DOCKERHUB_USERNAME }}") {
		t.Errorf("Expected secret expressions in workflow, got:\n%s", workflow)
	}
	if strings.Contains(string(workflow), "[[") {
		t.Errorf("Expected workflow template delimiters to be resolved, got:\n%s", workflow)
	}
}

func TestScaffolder_Render_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "stevedore.yaml"), []byte("name: keep-me\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := NewScaffolder().Render(dir, testData(), false)
	if err == nil {
		t.Fatal("Expected error for existing file")
	}

	content, _ := os.ReadFile(filepath.Join(dir, "stevedore.yaml"))
	if string(content) != "name: keep-me\n" {
		t.Error("Expected existing file to be left alone")
	}
}

func TestScaffolder_Render_Force(t *testing.T) {
	dir := t.TempDir()

	if err := os.WriteFile(filepath.Join(dir, "stevedore.yaml"), []byte("name: old\n"), 0644); err != nil {
		t.Fatal(err)
	}

	written, err := NewScaffolder().Render(dir, testData(), true)
	if err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("Expected 3 files, got %v", written)
	}

	content, _ := os.ReadFile(filepath.Join(dir, "stevedore.yaml"))
	if !strings.Contains(string(content), "name: example") {
		t.Error("Expected file to be overwritten with force")
	}
}

func TestScaffolder_Render_DefaultBranchFallback(t *testing.T) {
	dir := t.TempDir()

	data := testData()
	data.DefaultBranch = ""

	if _, err := NewScaffolder().Render(dir, data, false); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}

	pipeline, _ := os.ReadFile(filepath.Join(dir, "stevedore.yaml"))
	if !strings.Contains(string(pipeline), "default_branch: main") {
		t.Errorf("Expected default branch fallback, got:\n%s", pipeline)
	}
}
