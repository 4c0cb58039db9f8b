// Package config handles loading and saving the expander configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"tildex/internal/pathutil"

	"gopkg.in/yaml.v3"
)

const (
	Version = "1"

	// DefaultPath is expanded before use.
	DefaultPath = "~/.config/tildex/config.yaml"
)

// Config is the top-level configuration.
type Config struct {
	Version  string   `yaml:"version"`
	Platform string   `yaml:"platform,omitempty"`
	Fallback Fallback `yaml:"fallback"`
}

// Fallback configures the Windows home directory fallback chain.
type Fallback struct {
	ProfileEnv     string `yaml:"profile_env,omitempty"`
	WindowsDefault string `yaml:"windows_default,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: Version,
		Fallback: Fallback{
			ProfileEnv:     pathutil.DefaultProfileEnv,
			WindowsDefault: pathutil.DefaultWindowsHome,
		},
	}
}

// Load reads and parses a config file from the given path.
// Unset fallback fields take their defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(pathutil.Expand(path))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault is Load, except that a missing file yields Default().
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes cfg to path, creating parent directories if needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	expanded := pathutil.Expand(path)
	if err := os.MkdirAll(filepath.Dir(expanded), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := os.WriteFile(expanded, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.Fallback.ProfileEnv == "" {
		c.Fallback.ProfileEnv = pathutil.DefaultProfileEnv
	}
	if c.Fallback.WindowsDefault == "" {
		c.Fallback.WindowsDefault = pathutil.DefaultWindowsHome
	}
}

// Validate checks the version and the fallback settings.
func (c *Config) Validate() error {
	if c.Version == "" {
		return errors.New("config missing version field")
	}

	if c.Version != Version {
		return fmt.Errorf("unsupported config version: %s", c.Version)
	}

	if c.Fallback.ProfileEnv == "" {
		return errors.New("fallback: profile_env cannot be empty")
	}

	if c.Fallback.WindowsDefault == "" {
		return errors.New("fallback: windows_default cannot be empty")
	}

	return nil
}

// Expander builds a path expander from the configuration.
// A non-empty platform argument takes precedence over the configured one.
func (c *Config) Expander(platform string) *pathutil.Expander {
	if platform == "" {
		platform = c.Platform
	}
	return &pathutil.Expander{
		Platform:       platform,
		ProfileEnv:     c.Fallback.ProfileEnv,
		WindowsDefault: c.Fallback.WindowsDefault,
	}
}
