// Package main provides CLI flag definitions for gitsub.
package main

import (
	"github.com/urfave/cli/v3"
)

// globalFlags returns all global flags for the application.
// Note: --version is provided automatically by urfave/cli via Version.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "cwd",
			Usage: "Run as if started in this directory",
		},
		&cli.StringFlag{
			Name:    "theme",
			Aliases: []string{"t"},
			Usage:   "Override the output theme",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colorized output",
		},
		&cli.StringFlag{
			Name:  "config-file",
			Usage: "Path to configuration file",
		},
		&cli.StringFlag{
			Name:  "debug-log",
			Usage: "Path to debug log file",
		},
	}
}
