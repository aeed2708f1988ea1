// Package main provides CLI command definitions for gitsub.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/chmouel/gitsub/internal/config"
	"github.com/chmouel/gitsub/internal/git"
	"github.com/chmouel/gitsub/internal/log"
	"github.com/chmouel/gitsub/internal/render"
	"github.com/chmouel/gitsub/internal/submodule"
	"github.com/chmouel/gitsub/internal/theme"
)

// Seams for tests, mirroring how config loading and service construction
// are injected elsewhere in the command layer.
var (
	discoverFunc     = submodule.Discover
	loadConfigFunc   = config.LoadConfig
	stdoutIsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
)

// env bundles everything a subcommand handler needs.
type env struct {
	cfg      *config.AppConfig
	cwd      string
	renderer *render.Renderer
	runner   *git.Runner
}

// setupEnv resolves the working directory, loads configuration, wires the
// debug log, and builds the renderer and git runner.
func setupEnv(cmd *cli.Command) (*env, error) {
	cwd := cmd.String("cwd")
	if cwd == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("resolving working directory: %w", err)
		}
		cwd = wd
	}

	cfg, err := loadConfigFunc(cmd.String("config-file"), cwd)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	debugLog := cmd.String("debug-log")
	if debugLog == "" {
		debugLog = cfg.DebugLog
	}
	if err := log.SetFile(debugLog); err != nil {
		fmt.Fprintf(os.Stderr, "Error opening debug log file %q: %v\n", debugLog, err)
	}

	if themeName := cmd.String("theme"); themeName != "" {
		normalized := config.NormalizeThemeName(themeName)
		if normalized == "" {
			return nil, fmt.Errorf("unknown theme %q", themeName)
		}
		cfg.Theme = normalized
	}

	colored := !cmd.Bool("no-color") && stdoutIsTerminal()
	styles := render.NewStyles(theme.ByName(cfg.Theme), colored)

	return &env{
		cfg:      cfg,
		cwd:      cwd,
		renderer: render.New(os.Stdout, styles),
		runner:   git.NewRunner(cfg.GitPath),
	}, nil
}

func cloneCommand() *cli.Command {
	return &cli.Command{
		Name:      "clone",
		Usage:     "Clone a repository with its submodules and list them",
		ArgsUsage: "<url> [path]",
		Action:    handleCloneAction,
	}
}

func initCommand() *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Initialize and update all submodules",
		Action: handleInitAction,
	}
}

func rmCommand() *cli.Command {
	return &cli.Command{
		Name:      "rm",
		Usage:     "Remove a submodule",
		ArgsUsage: "<path>",
		Action:    handleRmAction,
	}
}

func lsCommand() *cli.Command {
	return &cli.Command{
		Name:   "ls",
		Usage:  "List submodules of the surrounding repository",
		Action: handleLsAction,
	}
}

func statusCommand() *cli.Command {
	return &cli.Command{
		Name:   "status",
		Usage:  "Show submodule status with per-file changes",
		Action: handleStatusAction,
	}
}

// handleCloneAction clones recursively, then lists the submodules of the
// fresh checkout. When the checkout path cannot be inferred from the URL
// the listing is skipped without error.
func handleCloneAction(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	url := cmd.Args().First()
	if url == "" {
		return errors.New("usage: gitsub clone <url> [path]")
	}
	path := cmd.Args().Get(1)

	args := []string{"clone", "--recursive", url}
	if path != "" {
		args = append(args, path)
	}
	if err := e.runner.RunInteractive(ctx, args, e.cwd); err != nil {
		return err
	}

	repoPath := path
	if repoPath == "" {
		repoPath, err = git.ClonePath(url)
		if err != nil {
			return err
		}
		if repoPath == "" {
			log.Printf("cannot determine path from url %s", url)
			return nil
		}
	}
	if !filepath.IsAbs(repoPath) {
		repoPath = filepath.Join(e.cwd, repoPath)
	}

	svc, err := discoverFunc(repoPath, e.cfg.ShowUntracked)
	if err != nil {
		return err
	}
	subs, err := svc.List()
	if err != nil {
		return err
	}
	for _, info := range subs {
		e.renderer.CloneListing(info)
	}
	return nil
}

// handleInitAction runs submodule update --init in the discovered root.
func handleInitAction(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	svc, err := discoverFunc(e.cwd, e.cfg.ShowUntracked)
	if err != nil {
		return err
	}

	return e.runner.RunInteractive(ctx, []string{"submodule", "update", "--init", "--recursive"}, svc.Root())
}

// handleRmAction deinits a submodule and removes it from the index, the
// documented two-step removal.
func handleRmAction(ctx context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	path := cmd.Args().First()
	if path == "" {
		return errors.New("usage: gitsub rm <path>")
	}

	svc, err := discoverFunc(e.cwd, e.cfg.ShowUntracked)
	if err != nil {
		return err
	}
	root := svc.Root()

	if err := e.runner.RunInteractive(ctx, []string{"submodule", "deinit", "-f", path}, root); err != nil {
		return err
	}
	return e.runner.RunInteractive(ctx, []string{"rm", "-f", path}, root)
}

// handleLsAction lists submodules sorted by name.
func handleLsAction(_ context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	svc, err := discoverFunc(e.cwd, e.cfg.ShowUntracked)
	if err != nil {
		return err
	}
	subs, err := svc.List()
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		fmt.Println("No submodules found")
		return nil
	}
	for _, info := range subs {
		e.renderer.Submodule(info)
	}
	return nil
}

// handleStatusAction prints per-submodule status reports.
func handleStatusAction(_ context.Context, cmd *cli.Command) error {
	e, err := setupEnv(cmd)
	if err != nil {
		return err
	}

	svc, err := discoverFunc(e.cwd, e.cfg.ShowUntracked)
	if err != nil {
		return err
	}
	entries, err := svc.Status()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No submodules found")
		return nil
	}
	for _, entry := range entries {
		e.renderer.Report(entry.Info, entry.Report)
	}
	return nil
}
