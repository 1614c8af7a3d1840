package core

// Version is the application version, set at build time via ldflags:
//
//	go build -ldflags "-X primelab/core.Version=$(git describe --tags --always)" .
//
// If not set at build time, defaults to "dev".
var Version = "dev"

// GitCommit is the git commit hash, set at build time via ldflags.
var GitCommit = "unknown"

// BuildTime is the build timestamp, set at build time via ldflags.
var BuildTime = "unknown"

// GetVersionInfo returns a formatted version information string, e.g.
// "v1.0.0 (built 2024-01-15T10:30:00Z, commit abc1234)".
func GetVersionInfo() string {
	return Version + " (built " + BuildTime + ", commit " + GitCommit + ")"
}
