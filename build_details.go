package apisidebar

import (
	"fmt"
	"runtime"
)

var (
	// version is set via ldflags during build by GoReleaser
	// For development builds, this will show "dev"
	version = "dev"
	// commit is the short git hash, set via ldflags
	commit = "unknown"
)

// Version returns the compiled version or 'dev' if run from source
func Version() string {
	return version
}

// Commit returns the git commit the binary was built from, or 'unknown'
func Commit() string {
	return commit
}

// BuildInfo returns a multi-line summary of the build metadata,
// used as the CLI version template.
func BuildInfo() string {
	return fmt.Sprintf("apisidebar %s\ncommit: %s\ngo: %s\n", version, commit, runtime.Version())
}
