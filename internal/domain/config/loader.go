package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// EnvConfigPath overrides the configuration file location when set.
const EnvConfigPath = "TOPGRADE_CONFIG"

// ErrNotFound indicates the configuration file does not exist.
var ErrNotFound = errors.New("config file not found")

// ParseError wraps a TOML syntax or schema error with the file path.
type ParseError struct {
	Path       string
	Underlying error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid config %s: %v", e.Path, e.Underlying)
}

func (e *ParseError) Unwrap() error {
	return e.Underlying
}

// DefaultPath resolves the default configuration file location,
// $XDG_CONFIG_HOME/topgrade.toml or the platform equivalent.
func DefaultPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("cannot resolve config directory: %w", err)
	}
	return filepath.Join(dir, "topgrade.toml"), nil
}

// Load reads and parses the configuration at path. A missing file yields
// the default configuration: topgrade works without one.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse parses TOML configuration data. path is used in error messages only.
func Parse(data []byte, path string) (*Config, error) {
	cfg := New()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, &ParseError{Path: path, Underlying: err}
	}
	return cfg, nil
}
