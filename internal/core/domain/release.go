package domain

import (
	"time"

	"github.com/opencontainers/go-digest"
)

// ArtifactType values for the OCI release artifact and its layers.
type ArtifactType string

const (
	ArtifactTypeRelease         ArtifactType = "application/vnd.stevedore.release.v1"
	ArtifactTypeReleaseManifest ArtifactType = "application/vnd.stevedore.release.manifest.v1+json"
)

// ReleaseManifest is the payload published to the registry as an OCI
// artifact after a successful run. It pins every pushed image by digest so a
// deployment can be reproduced without re-resolving moving tags.
type ReleaseManifest struct {
	Name      string         `json:"name"`
	Version   string         `json:"version"`
	Ref       GitRef         `json:"ref"`
	Images    []ReleaseImage `json:"images"`
	CreatedAt time.Time      `json:"created_at"`
} // @name ReleaseManifest

type ReleaseImage struct {
	Target string        `json:"target"`
	Repo   string        `json:"repo"`
	Tags   []string      `json:"tags"`
	Digest digest.Digest `json:"digest,omitempty"`
} // @name ReleaseImage

// AnnotationInfo becomes dev.stevedore.release.* manifest annotations.
type AnnotationInfo struct {
	Revision string
	Source   string
	Version  string
	Extra    map[string]string
}

type BuildOptions struct {
	Dockerfile string
	ContextDir string
	Tags       []string
	BuildArgs  map[string]string
	Labels     map[string]string
}
