package fetch

import (
	"context"
	"fmt"
	"os"

	getter "github.com/hashicorp/go-getter"
	cp "github.com/otiai10/copy"
	logger "github.com/stevedore-dev/stevedore/internal/core/services/log"
	"go.uber.org/zap"
)

// SourceFetcher materializes a repository checkout for webhook and cron
// triggered runs, which have no working copy of their own.
type SourceFetcher struct {
	baseDir string
}

func NewSourceFetcher(baseDir string) *SourceFetcher {
	return &SourceFetcher{baseDir: baseDir}
}

// Fetch downloads src at the given commit into a fresh directory and returns
// its path. src is anything go-getter understands, webhook payloads hand in
// the clone URL.
func (f *SourceFetcher) Fetch(ctx context.Context, src string, sha string) (string, error) {
	dst, err := os.MkdirTemp(f.baseDir, "stevedore-src-")
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("git::%s", src)
	if sha != "" {
		url = fmt.Sprintf("%s?ref=%s", url, sha)
	}

	logger.Log().Info("Fetching source", zap.String("src", src), zap.String("sha", sha), zap.String("dst", dst))

	client := &getter.Client{
		Ctx:  ctx,
		Src:  url,
		Dst:  dst,
		Mode: getter.ClientModeDir,
	}

	if err := client.Get(); err != nil {
		os.RemoveAll(dst)
		return "", fmt.Errorf("failed to fetch %s: %w", src, err)
	}

	return dst, nil
}

// Stage copies a working copy into an isolated directory so a running build
// never sees files mutated underneath it. The .git directory comes along, ref
// resolution still has to work on the staged tree.
func (f *SourceFetcher) Stage(dir string) (string, error) {
	dst, err := os.MkdirTemp(f.baseDir, "stevedore-ctx-")
	if err != nil {
		return "", err
	}

	if err := cp.Copy(dir, dst); err != nil {
		os.RemoveAll(dst)
		return "", fmt.Errorf("failed to stage build context: %w", err)
	}
	return dst, nil
}

func (f *SourceFetcher) Cleanup(dir string) error {
	if dir == "" {
		return nil
	}
	return os.RemoveAll(dir)
}
