// Package config loads and saves the user configuration: the list of
// exclude glob patterns honored by scanning, sizing, and deletion.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/reclaimdev/reclaim/internal/exclude"
	"github.com/reclaimdev/reclaim/internal/platform"
)

// EnvConfigDir overrides the platform configuration directory when set.
const EnvConfigDir = "XDG_CONFIG_HOME"

// Config represents the application configuration
type Config struct {
	Exclude []string `yaml:"exclude"`
}

// Path returns the configuration file location: the directory named by
// XDG_CONFIG_HOME when set, otherwise the platform configuration
// directory, then reclaim/config.yaml beneath it.
func Path() (string, error) {
	root := os.Getenv(EnvConfigDir)
	if root == "" {
		var err error
		root, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine configuration directory: %w", err)
		}
	}
	return filepath.Join(root, "reclaim", "config.yaml"), nil
}

// Load reads the configuration. A missing file yields the default empty
// configuration; a malformed file is an error.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

// Save writes the full configuration, creating parent directories as
// needed.
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// AppendExclude adds a pattern unless it is already present and reports
// whether the configuration changed.
func (c *Config) AppendExclude(pattern string) bool {
	for _, existing := range c.Exclude {
		if existing == pattern {
			return false
		}
	}
	c.Exclude = append(c.Exclude, pattern)
	return true
}

// CompileExcludes builds the exclusion matcher from the configured
// patterns. An invalid pattern is fatal to the whole run.
func (c *Config) CompileExcludes(env *platform.Info) (*exclude.Matcher, error) {
	return exclude.New(c.Exclude, env.HomeDir, env.WorkDir)
}

// EnsureExists creates a default configuration file if none exists and
// returns its path.
func EnsureExists() (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := (&Config{}).Save(); err != nil {
			return "", err
		}
	}
	return path, nil
}
