package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitConfigOutput(t *testing.T) {
	tests := []struct {
		name     string
		output   string
		expected map[string]any
	}{
		{
			name:     "empty",
			output:   "",
			expected: map[string]any{},
		},
		{
			name:   "single key",
			output: "sub.theme dracula\n",
			expected: map[string]any{
				"theme": "dracula",
			},
		},
		{
			name:   "value with spaces",
			output: "sub.git_path /path with spaces/git\n",
			expected: map[string]any{
				"git_path": "/path with spaces/git",
			},
		},
		{
			name:   "later occurrence wins",
			output: "sub.theme dracula\nsub.theme clean-light\n",
			expected: map[string]any{
				"theme": "clean-light",
			},
		},
		{
			name:   "malformed lines skipped",
			output: "sub.theme dracula\nnonsense\n\n",
			expected: map[string]any{
				"theme": "dracula",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseGitConfigOutput(tt.output))
		})
	}
}

func TestLoadGitConfig(t *testing.T) {
	gitConfigMock = func(args []string, repoPath string) (string, error) {
		assert.Contains(t, args, "--get-regexp")
		assert.Equal(t, "/repo", repoPath)
		return "sub.show_untracked false\n", nil
	}
	t.Cleanup(func() { gitConfigMock = nil })

	values, err := loadGitConfig("/repo")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"show_untracked": "false"}, values)
}

func TestLoadGitConfigError(t *testing.T) {
	gitConfigMock = func([]string, string) (string, error) {
		return "", errors.New("git missing")
	}
	t.Cleanup(func() { gitConfigMock = nil })

	_, err := loadGitConfig("")
	assert.Error(t, err)
}
