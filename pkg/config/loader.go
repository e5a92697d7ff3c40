package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfig names the environment variable holding a config path.
const EnvConfig = "EMJTXT_CONFIG"

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML config data. Unknown keys are rejected; an empty
// document yields the defaults.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	expandEnvVars(&cfg)
	cfg.SetDefaults()

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// DefaultPath returns $EMJTXT_CONFIG, or emjtxt/config.yaml under the user
// config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "emjtxt", "config.yaml")
}

// LoadOrDefault loads path, or DefaultPath when path is empty. A missing file
// at the default location yields Default() and an empty path; a missing
// explicit path is an error.
func LoadOrDefault(path string) (*Config, string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := Load(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), "", nil
		}
		return nil, path, err
	}
	return cfg, path, nil
}

// expandEnvVars expands environment variables in string values.
func expandEnvVars(c *Config) {
	c.Font = os.ExpandEnv(c.Font)
	c.Background = os.ExpandEnv(c.Background)
	c.Mode = os.ExpandEnv(c.Mode)
	c.Theme = os.ExpandEnv(c.Theme)
	c.WidthMeasure = os.ExpandEnv(c.WidthMeasure)
	c.Export.File = expandTilde(os.ExpandEnv(c.Export.File))
	for i := range c.Emoji {
		c.Emoji[i] = os.ExpandEnv(c.Emoji[i])
	}
}

// expandTilde expands a leading ~ to the home directory.
func expandTilde(path string) string {
	if len(path) > 0 && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			if len(path) == 1 {
				return home
			} else if path[1] == '/' || path[1] == filepath.Separator {
				return filepath.Join(home, path[2:])
			}
		}
	}
	return path
}
