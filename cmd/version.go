// Package cmd holds build metadata for the motd binary. The values are
// replaced at link time:
//
//	go build -ldflags "-X github.com/thoreinstein/motd/cmd.Version=v1.2.0"
package cmd

var (
	// Version is the release tag.
	Version = "dev"
	// Commit is the git revision.
	Commit = "none"
	// Date is when the binary was built.
	Date = "unknown"
)
