// Command toggley runs the theme toggler daemon and its CLI.
package main

import (
	"runtime"

	"github.com/bnema/toggley/internal/cli/cmd"
	"github.com/bnema/toggley/internal/domain/build"
)

// Build information set via ldflags
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

func main() {
	cmd.SetBuildInfo(build.Info{
		Version:   version,
		Commit:    commit,
		BuildDate: buildDate,
		GoVersion: runtime.Version(),
	})
	cmd.Execute()
}
