package registry

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	v1 "github.com/opencontainers/image-spec/specs-go/v1"
	"github.com/stevedore-dev/stevedore/internal/core/domain"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
	"oras.land/oras-go/v2"
	"oras.land/oras-go/v2/content/file"
	"oras.land/oras-go/v2/errdef"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/retry"
)

const annotationPrefix = "dev.stevedore.release."

type OciClient struct {
	host     string
	username string
	password string
}

func NewOciClient(host string, username string, password string) *OciClient {
	return &OciClient{
		host:     host,
		username: username,
		password: password,
	}
}

func (c *OciClient) GetRepo(repoUrl string) (*remote.Repository, error) {

	repo, err := remote.NewRepository(repoUrl)

	if err != nil {
		return nil, err
	}

	if c.host == "" {
		return nil, domain.ErrNoCredentials
	}

	if c.username == "" || c.password == "" {
		logger.Log().Warn("No registry credentials found. Trying anonymous access")
	} else {
		repo.Client = &auth.Client{
			Client: retry.DefaultClient,
			Cache:  auth.DefaultCache,
			Credential: auth.StaticCredential(c.host, auth.Credential{
				Username: c.username,
				Password: c.password,
			}),
		}
	}

	return repo, nil
}

// PushRelease packs every file in dir into a release artifact and pushes it
// under the given tag. The release manifest json becomes its own layer so
// consumers can fetch it without pulling the whole artifact.
func (c *OciClient) PushRelease(dir string, repo string, tag string, info domain.AnnotationInfo) (v1.Descriptor, error) {

	entries, err := os.ReadDir(dir)
	if err != nil {
		return v1.Descriptor{}, fmt.Errorf("failed to read release directory: %w", err)
	}
	if len(entries) == 0 {
		return v1.Descriptor{}, fmt.Errorf("no files found to push")
	}

	fs, err := file.New(dir)
	if err != nil {
		return v1.Descriptor{}, err
	}
	defer fs.Close()

	repoInstance, err := c.GetRepo(repo)
	if err != nil {
		return v1.Descriptor{}, err
	}

	ctx := context.Background()

	layers := make([]v1.Descriptor, 0, len(entries))
	for _, entry := range entries {
		mediaType := string(domain.ArtifactTypeRelease)
		if entry.Name() == "release.json" {
			mediaType = string(domain.ArtifactTypeReleaseManifest)
		}
		desc, err := fs.Add(ctx, entry.Name(), mediaType, filepath.Join(dir, entry.Name()))
		if err != nil {
			return v1.Descriptor{}, err
		}
		logger.Log().Info("Packed release layer", zap.String("name", entry.Name()), zap.String("digest", desc.Digest.String()))
		layers = append(layers, desc)
	}

	annotations := map[string]string{}
	if info.Revision != "" {
		annotations[annotationPrefix+"revision"] = info.Revision
	}
	if info.Source != "" {
		annotations[annotationPrefix+"source"] = info.Source
	}
	if info.Version != "" {
		annotations[annotationPrefix+"version"] = info.Version
	}
	for k, v := range info.Extra {
		annotations[annotationPrefix+k] = v
	}

	opts := oras.PackManifestOptions{
		Layers:              layers,
		ManifestAnnotations: annotations,
	}
	rootDescriptor, err := oras.PackManifest(ctx, fs, oras.PackManifestVersion1_1, string(domain.ArtifactTypeRelease), opts)
	if err != nil {
		return v1.Descriptor{}, err
	}

	if err = fs.Tag(ctx, rootDescriptor, tag); err != nil {
		return v1.Descriptor{}, err
	}

	pushCopyOpts := oras.CopyOptions{
		CopyGraphOptions: oras.CopyGraphOptions{
			PostCopy: func(ctx context.Context, desc v1.Descriptor) error {
				logger.Log().Info("Pushed layer",
					zap.String("digest", desc.Digest.String()),
					zap.String("mediaType", desc.MediaType),
					zap.Int64("size", desc.Size),
				)
				return nil
			},
			OnCopySkipped: func(ctx context.Context, desc v1.Descriptor) error {
				logger.Log().Info("Layer already exists in registry, skipping",
					zap.String("digest", desc.Digest.String()),
					zap.String("mediaType", desc.MediaType),
				)
				return nil
			},
		},
	}
	_, err = oras.Copy(ctx, fs, tag, repoInstance, tag, pushCopyOpts)

	return rootDescriptor, err
}

func (c *OciClient) Tags(repo string) ([]string, error) {
	repoInstance, err := c.GetRepo(repo)
	if err != nil {
		return nil, err
	}

	var tags []string
	err = repoInstance.Tags(context.Background(), "", func(page []string) error {
		tags = append(tags, page...)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tags, nil
}

func (c *OciClient) ResolveTag(repo string, tag string) (*v1.Descriptor, error) {
	repoInstance, err := c.GetRepo(repo)
	if err != nil {
		return nil, err
	}

	desc, err := oras.Resolve(context.Background(), repoInstance, tag, oras.DefaultResolveOptions)
	if err != nil {
		return nil, err
	}
	return &desc, nil
}

func (c *OciClient) TagExists(repo string, tag string) (bool, error) {
	_, err := c.ResolveTag(repo, tag)
	if err != nil {
		if errors.Is(err, errdef.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
