// Package config loads the optional user configuration for git-pr.
// Values from the file act as defaults: CLI flags and environment variables
// always win.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig overrides the configuration file location.
	EnvConfig = "GIT_PR_CONFIG"
	// ConfigDir is the directory name below the user config directory.
	ConfigDir = "git-pr"
	// ConfigFile is the name of the configuration file.
	ConfigFile = "config.yaml"
)

// ErrInvalidDataFormat is returned when the file cannot be parsed.
var ErrInvalidDataFormat = errors.New("invalid data format")

// Config is the user configuration.
type Config struct {
	// Editor overrides the editor chosen by git.
	Editor string `yaml:"editor,omitempty"`
	// GhPath is the GitHub CLI binary to use.
	GhPath string `yaml:"gh_path,omitempty"`
	// GitPath is the git binary to use.
	GitPath string `yaml:"git_path,omitempty"`

	// Push, Open and Copy turn the corresponding flags on by default.
	Push bool `yaml:"push,omitempty"`
	Open bool `yaml:"open,omitempty"`
	Copy bool `yaml:"copy,omitempty"`

	Verbose bool `yaml:"verbose,omitempty"`
}

// DefaultPath returns the location of the configuration file.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDir, ConfigFile), nil
}

// Load reads the configuration at path. A missing file yields a zero Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// LoadDefault loads the configuration from DefaultPath.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Load(path)
}

// Parse decodes YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDataFormat, err)
	}
	return &cfg, nil
}

// ResolveString returns the first non-empty value.
// Precedence: cliValue > configValue > defaultValue.
func ResolveString(cliValue, configValue, defaultValue string) string {
	if cliValue != "" {
		return cliValue
	}
	if configValue != "" {
		return configValue
	}
	return defaultValue
}
