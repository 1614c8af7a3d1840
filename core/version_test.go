package core

import (
	"strings"
	"testing"
)

func TestGetVersionInfo(t *testing.T) {
	result := GetVersionInfo()

	for _, part := range []string{Version, BuildTime, GitCommit} {
		if !strings.Contains(result, part) {
			t.Errorf("GetVersionInfo() = %q, should contain %q", result, part)
		}
	}
}

func TestGetVersionInfo_Injected(t *testing.T) {
	origVersion, origBuild, origCommit := Version, BuildTime, GitCommit
	defer func() { Version, BuildTime, GitCommit = origVersion, origBuild, origCommit }()

	Version, BuildTime, GitCommit = "v1.2.3", "2024-01-15T10:30:00Z", "abc1234"
	want := "v1.2.3 (built 2024-01-15T10:30:00Z, commit abc1234)"
	if got := GetVersionInfo(); got != want {
		t.Errorf("GetVersionInfo() = %q, want %q", got, want)
	}
}
