// Package config loads gitsub configuration from YAML and git config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chmouel/gitsub/internal/theme"
	"gopkg.in/yaml.v3"
)

// AppConfig defines the global gitsub configuration options.
type AppConfig struct {
	GitPath       string // Path or name of the git binary (default: "git")
	Theme         string // Theme name: see theme.AvailableThemes
	ShowUntracked bool   // Include untracked files in status reports
	DebugLog      string // Path to debug log file, empty disables logging
}

// DefaultConfig returns the default configuration values.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		GitPath:       "git",
		Theme:         theme.DefaultName,
		ShowUntracked: true,
	}
}

// parseConfig builds an AppConfig from a decoded YAML or git-config map,
// falling back to defaults for missing or malformed values.
func parseConfig(data map[string]any) *AppConfig {
	cfg := DefaultConfig()
	cfg.apply(data)
	return cfg
}

func (c *AppConfig) apply(data map[string]any) {
	if v, ok := data["git_path"].(string); ok {
		if v = strings.TrimSpace(v); v != "" {
			c.GitPath = v
		}
	}
	if v, ok := data["theme"].(string); ok {
		if normalized := NormalizeThemeName(v); normalized != "" {
			c.Theme = normalized
		}
	}
	if v, ok := data["debug_log"].(string); ok {
		c.DebugLog = strings.TrimSpace(v)
	}
	c.ShowUntracked = coerceBool(data["show_untracked"], c.ShowUntracked)
}

func coerceBool(value any, defaultVal bool) bool {
	if value == nil {
		return defaultVal
	}

	switch v := value.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case string:
		text := strings.ToLower(strings.TrimSpace(v))
		switch text {
		case "1", "true", "yes", "y", "on":
			return true
		case "0", "false", "no", "n", "off":
			return false
		}
	}
	return defaultVal
}

// LoadConfig loads configuration with precedence: defaults, then the YAML
// file, then repo-scoped git config (sub.* keys). An empty configPath falls
// back to config.yaml/config.yml under the user config directory.
func LoadConfig(configPath, repoPath string) (*AppConfig, error) {
	configBase, err := configDir()
	if err != nil {
		return DefaultConfig(), err
	}

	var paths []string
	if configPath != "" {
		expanded, err := expandPath(configPath)
		if err != nil {
			return DefaultConfig(), err
		}
		absPath, err := filepath.Abs(expanded)
		if err != nil {
			return DefaultConfig(), err
		}
		paths = []string{absPath}
	} else {
		paths = []string{
			filepath.Join(configBase, "config.yaml"),
			filepath.Join(configBase, "config.yml"),
		}
	}

	var cfg *AppConfig

	for _, path := range paths {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		// #nosec G304 -- path comes from the user's own flag or config dir
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}

		var yamlData map[string]any
		if err := yaml.Unmarshal(data, &yamlData); err != nil {
			return DefaultConfig(), fmt.Errorf("parsing %s: %w", path, err)
		}

		cfg = parseConfig(yamlData)
		break
	}

	if cfg == nil {
		cfg = DefaultConfig()
	}

	// Repo-scoped git config wins over the file.
	gitValues, err := loadGitConfig(repoPath)
	if err == nil && len(gitValues) > 0 {
		cfg.apply(gitValues)
	}

	return cfg, nil
}

func configDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(base, "gitsub"), nil
}

func expandPath(path string) (string, error) {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[1:])
	}
	return os.ExpandEnv(path), nil
}

// NormalizeThemeName returns the canonical theme name if it is supported.
func NormalizeThemeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if theme.ByName(name) != nil {
		return name
	}
	return ""
}
