// Command modcmake converts the bazel_dep declarations of a MODULE.bazel file
// into a CMake file of <name>-version variables.
package main

import (
	"os"

	"github.com/bzlmod-tools/modcmake/internal/cli"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=...".
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	info := cli.BuildInfo{Version: version, Commit: commit, Date: date}
	if err := cli.Execute(info); err != nil {
		os.Exit(1)
	}
}
