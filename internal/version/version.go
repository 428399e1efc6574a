// Package version holds the segbar build version.
//
// Release builds set both values:
//
//	go build -ldflags "-X github.com/cristianoliveira/segbar/internal/version.Version=v0.3.0 \
//	  -X github.com/cristianoliveira/segbar/internal/version.Commit=$(git rev-parse --short HEAD)" ./cmd/segbar
package version

var (
	Version = "development"
	Commit  = "unknown"
)

// String returns Version, with the commit appended when it is known.
func String() string {
	if Commit == "" || Commit == "unknown" {
		return Version
	}
	return Version + "+" + Commit
}
