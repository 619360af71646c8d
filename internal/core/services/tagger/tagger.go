package tagger

import (
	"fmt"
	"strings"
	"time"

	semver "github.com/Masterminds/semver/v3"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	"github.com/stevedore-dev/stevedore/internal/core/ports"
)

const maxTagLength = 128

// Tagger derives the tag set for a resolved ref. Derivation is pure: the
// same ref and policy always produce the same tags, so a re-run of a
// pipeline publishes to the same names.
type Tagger struct {
	renderer ports.TemplateRendererInterface
	now      func() time.Time
}

func NewTagger(renderer ports.TemplateRendererInterface) *Tagger {
	return &Tagger{
		renderer: renderer,
		now:      time.Now,
	}
}

type templateData struct {
	Ref       domain.GitRef
	Name      string
	SHA       string
	ShortSHA  string
	Timestamp string
}

func (t *Tagger) Derive(ref *domain.GitRef, policy domain.TagPolicy, defaultBranch string) ([]string, error) {
	if ref == nil {
		return nil, domain.ErrNoRef
	}

	var tags []string

	if policy.Template != "" {
		rendered, err := t.renderer.RenderTemplate(policy.Template, templateData{
			Ref:       *ref,
			Name:      ref.Name,
			SHA:       ref.SHA,
			ShortSHA:  ref.ShortSHA(),
			Timestamp: t.now().UTC().Format("20060102150405"),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to render tag template: %w", err)
		}
		tags = append(tags, Sanitize(rendered))
	}

	switch ref.Type {
	case domain.RefTypeTag:
		tags = append(tags, semverTags(ref.Name, policy)...)
	case domain.RefTypeBranch:
		tags = append(tags, Sanitize(ref.Name)+"-"+ref.ShortSHA())
		if defaultBranch != "" && ref.Name == defaultBranch {
			tags = append(tags, "edge")
		}
	default:
		tags = append(tags, ref.ShortSHA())
	}

	if policy.Latest == domain.LatestAlways {
		tags = append(tags, "latest")
	}

	return dedupe(tags), nil
}

func semverTags(name string, policy domain.TagPolicy) []string {
	version, err := semver.NewVersion(name)
	if err != nil {
		// non-semver tags publish verbatim
		return []string{Sanitize(name)}
	}

	tags := []string{version.String()}

	stable := version.Prerelease() == "" && version.Metadata() == ""
	if stable && policy.SemverAliases {
		tags = append(tags,
			fmt.Sprintf("%d.%d", version.Major(), version.Minor()),
			fmt.Sprintf("%d", version.Major()),
		)
	}

	latest := policy.Latest
	if latest == "" {
		latest = domain.LatestAuto
	}
	if latest == domain.LatestAuto && stable {
		tags = append(tags, "latest")
	}

	return tags
}

// Sanitize maps an arbitrary ref name onto the docker tag grammar:
// [a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}, lowercased.
func Sanitize(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}

	s := b.String()
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	s = strings.Trim(s, "-._")

	if s == "" {
		s = "unnamed"
	}
	if len(s) > maxTagLength {
		s = s[:maxTagLength]
		s = strings.Trim(s, "-._")
	}
	return s
}

func dedupe(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}
