package gitref

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/utils/env"
)

// Resolver determines the git ref a run is building. The CI environment wins
// over local .git inspection so that runner-side checkouts (which are often
// detached) still resolve to the branch or tag that triggered the workflow.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

func (r *Resolver) Resolve(dir string) (*domain.GitRef, error) {
	if ref := fromEnvironment(); ref != nil {
		return ref, nil
	}
	return fromGitDir(dir)
}

func fromEnvironment() *domain.GitRef {
	sha := env.CanGet("GITHUB_SHA")
	if sha == "" {
		return nil
	}

	if fullRef := env.CanGet("GITHUB_REF"); fullRef != "" {
		ref := &domain.GitRef{SHA: sha}
		switch {
		case strings.HasPrefix(fullRef, "refs/heads/"):
			ref.Type = domain.RefTypeBranch
			ref.Name = strings.TrimPrefix(fullRef, "refs/heads/")
		case strings.HasPrefix(fullRef, "refs/tags/"):
			ref.Type = domain.RefTypeTag
			ref.Name = strings.TrimPrefix(fullRef, "refs/tags/")
		case strings.HasPrefix(fullRef, "refs/pull/"):
			// pull request merge refs build like branches
			ref.Type = domain.RefTypeBranch
			ref.Name = strings.TrimSuffix(strings.TrimPrefix(fullRef, "refs/"), "/merge")
		default:
			ref.Type = domain.RefTypeDetached
			ref.Name = ref.ShortSHA()
		}
		return ref
	}

	// some events only carry the split pair
	name := env.CanGet("GITHUB_REF_NAME")
	if name == "" {
		return nil
	}
	ref := &domain.GitRef{SHA: sha, Name: name}
	switch env.CanGet("GITHUB_REF_TYPE") {
	case "tag":
		ref.Type = domain.RefTypeTag
	default:
		ref.Type = domain.RefTypeBranch
	}
	return ref
}

func fromGitDir(dir string) (*domain.GitRef, error) {
	gitDir := filepath.Join(dir, ".git")

	head, err := os.ReadFile(filepath.Join(gitDir, "HEAD"))
	if err != nil {
		return nil, domain.ErrNoRef
	}

	headContent := strings.TrimSpace(string(head))

	if !strings.HasPrefix(headContent, "ref: ") {
		// detached HEAD, content is the commit itself
		ref := &domain.GitRef{
			Type: domain.RefTypeDetached,
			SHA:  headContent,
		}
		ref.Name = ref.ShortSHA()
		return ref, nil
	}

	symRef := strings.TrimPrefix(headContent, "ref: ")

	sha, err := resolveSymRef(gitDir, symRef)
	if err != nil {
		return nil, err
	}

	ref := &domain.GitRef{SHA: sha}
	switch {
	case strings.HasPrefix(symRef, "refs/heads/"):
		ref.Type = domain.RefTypeBranch
		ref.Name = strings.TrimPrefix(symRef, "refs/heads/")
	case strings.HasPrefix(symRef, "refs/tags/"):
		ref.Type = domain.RefTypeTag
		ref.Name = strings.TrimPrefix(symRef, "refs/tags/")
	default:
		ref.Type = domain.RefTypeDetached
		ref.Name = ref.ShortSHA()
	}
	return ref, nil
}

func resolveSymRef(gitDir string, symRef string) (string, error) {
	loose := filepath.Join(gitDir, filepath.FromSlash(symRef))
	if content, err := os.ReadFile(loose); err == nil {
		return strings.TrimSpace(string(content)), nil
	}

	// ref may have been packed by git gc
	packed, err := os.Open(filepath.Join(gitDir, "packed-refs"))
	if err != nil {
		return "", fmt.Errorf("failed to resolve ref %s: %w", symRef, domain.ErrNoRef)
	}
	defer packed.Close()

	scanner := bufio.NewScanner(packed)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "^") {
			continue
		}
		parts := strings.SplitN(line, " ", 2)
		if len(parts) == 2 && parts[1] == symRef {
			return parts[0], nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", fmt.Errorf("failed to resolve ref %s: %w", symRef, domain.ErrNoRef)
}
