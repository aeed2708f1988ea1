package main

import (
	"context"
	"errors"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/gitsub/internal/config"
	"github.com/chmouel/gitsub/internal/submodule"
)

// newTestApp mirrors the command tree built in main, with config loading
// and terminal detection stubbed out.
func newTestApp(t *testing.T) *cli.Command {
	t.Helper()

	prevLoad := loadConfigFunc
	prevTerm := stdoutIsTerminal
	loadConfigFunc = func(string, string) (*config.AppConfig, error) {
		return config.DefaultConfig(), nil
	}
	stdoutIsTerminal = func() bool { return false }
	t.Cleanup(func() {
		loadConfigFunc = prevLoad
		stdoutIsTerminal = prevTerm
	})

	return &cli.Command{
		Name:  "gitsub",
		Flags: globalFlags(),
		Commands: []*cli.Command{
			cloneCommand(),
			initCommand(),
			rmCommand(),
			lsCommand(),
			statusCommand(),
		},
	}
}

func stubDiscover(t *testing.T, err error) {
	t.Helper()
	prev := discoverFunc
	discoverFunc = func(string, bool) (*submodule.Service, error) {
		return nil, err
	}
	t.Cleanup(func() { discoverFunc = prev })
}

func TestCloneRequiresURL(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(context.Background(), []string{"gitsub", "clone"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: gitsub clone")
}

func TestRmRequiresPath(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(context.Background(), []string{"gitsub", "rm"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage: gitsub rm")
}

func TestUnknownThemeRejected(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(context.Background(), []string{"gitsub", "--theme", "no-such-theme", "ls"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown theme")
}

func TestLsOutsideRepository(t *testing.T) {
	app := newTestApp(t)

	err := app.Run(context.Background(), []string{"gitsub", "--cwd", t.TempDir(), "ls"})
	require.Error(t, err)
	assert.ErrorIs(t, err, submodule.ErrNoRepository)
}

func TestStatusPropagatesDiscoveryError(t *testing.T) {
	app := newTestApp(t)
	discoveryErr := errors.New("discovery failed")
	stubDiscover(t, discoveryErr)

	err := app.Run(context.Background(), []string{"gitsub", "status"})
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryErr)
}

func TestInitPropagatesDiscoveryError(t *testing.T) {
	app := newTestApp(t)
	discoveryErr := errors.New("discovery failed")
	stubDiscover(t, discoveryErr)

	err := app.Run(context.Background(), []string{"gitsub", "init"})
	require.Error(t, err)
	assert.ErrorIs(t, err, discoveryErr)
}

func TestGlobalFlagNames(t *testing.T) {
	names := map[string]bool{}
	for _, flag := range globalFlags() {
		names[flag.Names()[0]] = true
	}

	for _, expected := range []string{"cwd", "theme", "no-color", "config-file", "debug-log"} {
		assert.True(t, names[expected], "missing global flag %q", expected)
	}
}
