package registry

import "testing"

func TestLatestSemver(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		expected string
	}{
		{
			name:     "mixed tags",
			tags:     []string{"latest", "main-0123456", "1.2.3", "1.10.0", "1.9.9", "edge"},
			expected: "1.10.0",
		},
		{
			name:     "v prefix",
			tags:     []string{"v0.1.0", "v0.2.0"},
			expected: "0.2.0",
		},
		{
			name:     "prerelease still compares by version",
			tags:     []string{"2.0.0-rc.1", "1.9.0"},
			expected: "2.0.0-rc.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			latest := LatestSemver(tt.tags)
			if latest == nil {
				t.Fatal("Expected a version")
			}
			if latest.String() != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, latest.String())
			}
		})
	}
}

func TestLatestSemver_NoSemverTags(t *testing.T) {
	if latest := LatestSemver([]string{"latest", "edge", "main-0123456"}); latest != nil {
		t.Errorf("Expected nil, got %s", latest)
	}
	if latest := LatestSemver(nil); latest != nil {
		t.Errorf("Expected nil for empty input, got %s", latest)
	}
}
