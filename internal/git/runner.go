// Package git wraps the system git binary for gitsub.
package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/chmouel/gitsub/internal/log"
)

// LookupPath is used to find executables in PATH. It's exposed as a package
// variable so tests can mock it and avoid depending on system binaries
// being installed.
var LookupPath = exec.LookPath

// ExitError carries the exit code of a failed git subprocess so main can
// terminate with the same code.
type ExitError struct {
	Code int
	Args []string
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("git %s exited with status %d", strings.Join(e.Args, " "), e.Code)
}

// Runner spawns git subprocesses in a fixed working directory.
type Runner struct {
	gitPath string
}

// NewRunner constructs a Runner for the given git binary name or path.
func NewRunner(gitPath string) *Runner {
	if gitPath == "" {
		gitPath = "git"
	}
	return &Runner{gitPath: gitPath}
}

func (r *Runner) debugf(format string, args ...any) {
	log.Printf(format, args...)
}

// prepare resolves the git binary and builds the command. Only the
// configured git binary is ever spawned.
func (r *Runner) prepare(ctx context.Context, args []string, cwd string) (*exec.Cmd, error) {
	if len(args) == 0 {
		return nil, errors.New("no git arguments provided")
	}

	path, err := LookupPath(r.gitPath)
	if err != nil {
		return nil, fmt.Errorf("git binary %q not found: %w", r.gitPath, err)
	}

	// #nosec G204 -- arguments come from internal logic, not shell interpolation
	cmd := exec.CommandContext(ctx, path, args...)
	if cwd != "" {
		cmd.Dir = cwd
	}
	return cmd, nil
}

// RunInteractive executes git with stdio attached to the terminal, so
// clone progress and prompts reach the user. A nonzero exit maps to an
// ExitError carrying the subprocess exit code.
func (r *Runner) RunInteractive(ctx context.Context, args []string, cwd string) error {
	r.debugf("run: git %s (cwd=%s)", strings.Join(args, " "), cwd)

	cmd, err := r.prepare(ctx, args, cwd)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			if code < 0 {
				code = 1
			}
			r.debugf("error: git %s (exit %d)", strings.Join(args, " "), code)
			return &ExitError{Code: code, Args: args}
		}
		return fmt.Errorf("spawning git: %w", err)
	}

	r.debugf("ok: git %s", strings.Join(args, " "))
	return nil
}

// Run executes git and returns its trimmed standard output. Stderr is
// folded into the returned error on failure.
func (r *Runner) Run(ctx context.Context, args []string, cwd string) (string, error) {
	r.debugf("run: git %s (cwd=%s)", strings.Join(args, " "), cwd)

	cmd, err := r.prepare(ctx, args, cwd)
	if err != nil {
		return "", err
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail != "" {
				return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), detail)
			}
			return "", fmt.Errorf("git %s (exit %d)", strings.Join(args, " "), exitErr.ExitCode())
		}
		return "", fmt.Errorf("spawning git: %w", err)
	}

	r.debugf("ok: git %s", strings.Join(args, " "))
	return strings.TrimSpace(string(output)), nil
}
