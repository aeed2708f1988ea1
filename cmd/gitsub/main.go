// Package main is the entry point for the gitsub binary.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/urfave/cli/v3"

	"github.com/chmouel/gitsub/internal/git"
	"github.com/chmouel/gitsub/internal/log"
)

var (
	version = "dev"
	commit  = "none"
	builtBy = "unknown"
)

func main() {
	app := &cli.Command{
		Name:                  "gitsub",
		Usage:                 "A colorized helper around git submodules",
		Version:               buildVersion(),
		EnableShellCompletion: true,

		Flags: globalFlags(),

		Commands: []*cli.Command{
			cloneCommand(),
			initCommand(),
			rmCommand(),
			lsCommand(),
			statusCommand(),
		},
	}

	err := app.Run(context.Background(), os.Args)
	_ = log.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)

		// A failed clone terminates with the child's exit code.
		var exitErr *git.ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// buildVersion assembles the version string, enriching linker-injected
// values from runtime build info when they were not set.
func buildVersion() string {
	c := commit
	b := builtBy
	if info, ok := debug.ReadBuildInfo(); ok {
		if c == "none" {
			for _, setting := range info.Settings {
				if setting.Key == "vcs.revision" {
					c = setting.Value
				}
			}
		}
		if b == "unknown" {
			b = info.GoVersion
		}
	}
	return fmt.Sprintf("%s (commit: %s, built by: %s)", version, c, b)
}
