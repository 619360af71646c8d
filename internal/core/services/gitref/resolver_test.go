package gitref

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stevedore-dev/stevedore/internal/core/domain"
)

const testSHA = "0123456789abcdef0123456789abcdef01234567"

// writeGitDir lays out a minimal .git directory for the resolver to inspect.
func writeGitDir(t *testing.T, head string, refs map[string]string, packed string) string {
	t.Helper()

	dir := t.TempDir()
	gitDir := filepath.Join(dir, ".git")
	if err := os.MkdirAll(gitDir, 0755); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(filepath.Join(gitDir, "HEAD"), []byte(head+"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for ref, sha := range refs {
		path := filepath.Join(gitDir, filepath.FromSlash(ref))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(sha+"\n"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	if packed != "" {
		if err := os.WriteFile(filepath.Join(gitDir, "packed-refs"), []byte(packed), 0644); err != nil {
			t.Fatal(err)
		}
	}

	return dir
}

func clearCIEnv(t *testing.T) {
	t.Helper()
	t.Setenv("GITHUB_REF", "")
	t.Setenv("GITHUB_REF_NAME", "")
	t.Setenv("GITHUB_REF_TYPE", "")
	t.Setenv("GITHUB_SHA", "")
}

func TestResolver_Resolve_EnvironmentBranch(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/heads/main")
	t.Setenv("GITHUB_SHA", testSHA)

	ref, err := NewResolver().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeBranch {
		t.Errorf("Expected branch ref, got %s", ref.Type)
	}
	if ref.Name != "main" {
		t.Errorf("Expected name main, got %s", ref.Name)
	}
	if ref.SHA != testSHA {
		t.Errorf("Expected SHA %s, got %s", testSHA, ref.SHA)
	}
}

func TestResolver_Resolve_EnvironmentTag(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/tags/v1.2.3")
	t.Setenv("GITHUB_SHA", testSHA)

	ref, err := NewResolver().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeTag {
		t.Errorf("Expected tag ref, got %s", ref.Type)
	}
	if ref.Name != "v1.2.3" {
		t.Errorf("Expected name v1.2.3, got %s", ref.Name)
	}
}

func TestResolver_Resolve_EnvironmentPullRequest(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/pull/42/merge")
	t.Setenv("GITHUB_SHA", testSHA)

	ref, err := NewResolver().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeBranch {
		t.Errorf("Expected branch ref, got %s", ref.Type)
	}
	if ref.Name != "pull/42" {
		t.Errorf("Expected name pull/42, got %s", ref.Name)
	}
}

func TestResolver_Resolve_EnvironmentRefNamePair(t *testing.T) {
	t.Setenv("GITHUB_REF", "")
	t.Setenv("GITHUB_REF_NAME", "v1.2.3")
	t.Setenv("GITHUB_REF_TYPE", "tag")
	t.Setenv("GITHUB_SHA", testSHA)

	ref, err := NewResolver().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeTag {
		t.Errorf("Expected tag ref, got %s", ref.Type)
	}
	if ref.Name != "v1.2.3" {
		t.Errorf("Expected name v1.2.3, got %s", ref.Name)
	}
	if ref.SHA != testSHA {
		t.Errorf("Expected SHA %s, got %s", testSHA, ref.SHA)
	}
}

func TestResolver_Resolve_EnvironmentRefNameDefaultsToBranch(t *testing.T) {
	t.Setenv("GITHUB_REF", "")
	t.Setenv("GITHUB_REF_NAME", "main")
	t.Setenv("GITHUB_REF_TYPE", "")
	t.Setenv("GITHUB_SHA", testSHA)

	ref, err := NewResolver().Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeBranch || ref.Name != "main" {
		t.Errorf("Expected branch main, got %s %s", ref.Type, ref.Name)
	}
}

func TestResolver_Resolve_EnvironmentWinsOverGitDir(t *testing.T) {
	t.Setenv("GITHUB_REF", "refs/tags/v9.9.9")
	t.Setenv("GITHUB_SHA", testSHA)

	// Local checkout points elsewhere, the environment still wins.
	dir := writeGitDir(t, "ref: refs/heads/other", map[string]string{
		"refs/heads/other": "ffffffffffffffffffffffffffffffffffffffff",
	}, "")

	ref, err := NewResolver().Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeTag || ref.Name != "v9.9.9" {
		t.Errorf("Expected tag v9.9.9 from environment, got %s %s", ref.Type, ref.Name)
	}
}

func TestResolver_Resolve_LooseRef(t *testing.T) {
	clearCIEnv(t)

	dir := writeGitDir(t, "ref: refs/heads/feature/login", map[string]string{
		"refs/heads/feature/login": testSHA,
	}, "")

	ref, err := NewResolver().Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeBranch {
		t.Errorf("Expected branch ref, got %s", ref.Type)
	}
	if ref.Name != "feature/login" {
		t.Errorf("Expected name feature/login, got %s", ref.Name)
	}
	if ref.SHA != testSHA {
		t.Errorf("Expected SHA %s, got %s", testSHA, ref.SHA)
	}
}

func TestResolver_Resolve_PackedRef(t *testing.T) {
	clearCIEnv(t)

	packed := "# pack-refs with: peeled fully-peeled sorted\n" +
		testSHA + " refs/heads/main\n" +
		"ffffffffffffffffffffffffffffffffffffffff refs/tags/v0.1.0\n" +
		"^eeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee\n"

	dir := writeGitDir(t, "ref: refs/heads/main", nil, packed)

	ref, err := NewResolver().Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Name != "main" || ref.SHA != testSHA {
		t.Errorf("Expected main@%s, got %s@%s", testSHA, ref.Name, ref.SHA)
	}
}

func TestResolver_Resolve_DetachedHead(t *testing.T) {
	clearCIEnv(t)

	dir := writeGitDir(t, testSHA, nil, "")

	ref, err := NewResolver().Resolve(dir)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}

	if ref.Type != domain.RefTypeDetached {
		t.Errorf("Expected detached ref, got %s", ref.Type)
	}
	if ref.Name != "0123456" {
		t.Errorf("Expected short sha name, got %s", ref.Name)
	}
	if ref.SHA != testSHA {
		t.Errorf("Expected SHA %s, got %s", testSHA, ref.SHA)
	}
}

func TestResolver_Resolve_NoRepository(t *testing.T) {
	clearCIEnv(t)

	_, err := NewResolver().Resolve(t.TempDir())
	if !errors.Is(err, domain.ErrNoRef) {
		t.Errorf("Expected ErrNoRef, got %v", err)
	}
}

func TestResolver_Resolve_UnresolvableSymRef(t *testing.T) {
	clearCIEnv(t)

	// HEAD names a branch nothing else knows about.
	dir := writeGitDir(t, "ref: refs/heads/ghost", nil, "")

	_, err := NewResolver().Resolve(dir)
	if !errors.Is(err, domain.ErrNoRef) {
		t.Errorf("Expected ErrNoRef, got %v", err)
	}
}
