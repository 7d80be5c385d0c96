// Package config loads composition options from a project file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// configFileNames is the ordered list of config file names to search for.
var configFileNames = []string{
	".astromate.yml",
	".astromate.yaml",
	".astromate.toml",
}

// Config is the top-level astromate configuration.
type Config struct {
	// Profile is serialized as "config" to match the options object the
	// rule engine's users already write.
	Profile   string         `yaml:"config" toml:"config"`
	Style     StyleConfig    `yaml:"style" toml:"style"`
	Overrides map[string]any `yaml:"overrides" toml:"overrides"`
	Prettier  map[string]any `yaml:"prettier" toml:"prettier"`
	Output    OutputConfig   `yaml:"output" toml:"output"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-" toml:"-"`
}

// OutputConfig controls how the CLI renders results.
type OutputConfig struct {
	Format string `yaml:"format" toml:"format"`
}

// Discover returns the path of the first config file found in dir, or ""
// when there is none.
func Discover(dir string) string {
	for _, name := range configFileNames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// Load reads configuration from path. With an empty path it searches the
// working directory and returns defaults when nothing is found. An explicit
// path that does not exist is an error.
func Load(path string) (*Config, error) {
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		path = Discover(wd)
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	cfg := defaults()
	if err := unmarshal(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func defaults() *Config {
	return &Config{
		Output: OutputConfig{Format: "json"},
	}
}
