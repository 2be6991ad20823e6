// Package buildinfo exposes version metadata stamped at build time.
//
// Release builds set the variables via ldflags:
//
//	go build -ldflags "\
//	  -X github.com/archplot/archplot/pkg/buildinfo.Version=v1.0.0 \
//	  -X github.com/archplot/archplot/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	  -X github.com/archplot/archplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
package buildinfo

import "fmt"

// The defaults identify an unstamped from-source build.
var (
	// Version is the semantic version, e.g. "v1.2.3".
	Version = "dev"

	// Commit is the git revision the binary was built from.
	Commit = "none"

	// Date is the UTC build timestamp.
	Date = "unknown"
)

// String returns the full build information block.
func String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", Version, Commit, Date)
}

// Template returns the cobra version template: the same fields as String
// with the binary name in front.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
