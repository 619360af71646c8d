package registry

import (
	semver "github.com/Masterminds/semver/v3"
)

// LatestSemver picks the highest semver among remote tags. Non-semver tags
// (branch builds, sha tags, "latest") are ignored.
func LatestSemver(tags []string) *semver.Version {
	var latest *semver.Version
	for _, tag := range tags {
		version, err := semver.NewVersion(tag)
		if err != nil {
			continue
		}
		if latest == nil || version.GreaterThan(latest) {
			latest = version
		}
	}
	return latest
}
