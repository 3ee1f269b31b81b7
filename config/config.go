// Package config loads grobidmeta settings from YAML.
//
// Settings are resolved from, in order of precedence: an explicit file,
// $XDG_CONFIG_HOME/grobidmeta/config.yaml, and the embedded defaults.
// GROBIDMETA_VERSIONS (comma separated) overrides the accepted versions.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG config home.
const AppName = "grobidmeta"

// FileName is the config file name looked up under the XDG config home.
const FileName = "config.yaml"

// VersionsEnv overrides Config.Versions when set.
const VersionsEnv = "GROBIDMETA_VERSIONS"

//go:embed default.yaml
var defaultYAML []byte

// Config holds extractor and CLI settings.
type Config struct {
	// Versions lists the accepted GROBID versions
	Versions []string `yaml:"versions" json:"versions"`

	// Parser is the tree parser name ("xml" or "html")
	Parser string `yaml:"parser" json:"parser"`

	// Format is the default output format name
	Format string `yaml:"format" json:"format"`

	// Workers bounds concurrent extraction in batch mode
	Workers int `yaml:"workers" json:"workers"`

	// Pretty enables indented output where the format supports it
	Pretty bool `yaml:"pretty" json:"pretty"`
}

// Default returns the embedded default configuration.
func Default() (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		return nil, fmt.Errorf("parsing embedded config: %w", err)
	}
	return &c, nil
}

// LoadFile reads a YAML file on top of the defaults. Keys missing from the
// file keep their default value; lists are replaced, not merged.
func LoadFile(path string) (*Config, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parsing config YAML: %w", err)
	}

	return c, nil
}

// Find returns the config file to use: explicit if set, otherwise the
// XDG user config file if it exists, otherwise "".
func Find(explicit string) string {
	if explicit != "" {
		return explicit
	}
	path, err := xdg.SearchConfigFile(filepath.Join(AppName, FileName))
	if err != nil {
		return ""
	}
	return path
}

// Load resolves the configuration for explicit (which may be empty),
// applies the environment override and validates the result.
func Load(explicit string) (*Config, error) {
	var (
		c   *Config
		err error
	)
	if path := Find(explicit); path != "" {
		c, err = LoadFile(path)
	} else {
		c, err = Default()
	}
	if err != nil {
		return nil, err
	}

	if env := os.Getenv(VersionsEnv); env != "" {
		c.Versions = SplitList(env)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// UserConfigPath returns where the user config file lives, whether or
// not it exists.
func UserConfigPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, FileName)
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	var errs []error
	if len(c.Versions) == 0 {
		errs = append(errs, errors.New("at least one accepted GROBID version is required"))
	}
	if c.Parser == "" {
		errs = append(errs, errors.New("parser must be set"))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// SplitList splits a comma separated list, dropping blank entries.
func SplitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
