package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Apply   ApplyConfig   `yaml:"apply"`
	Console ConsoleConfig `yaml:"console"`
	Logging LoggingConfig `yaml:"logging"`
}

type ApplyConfig struct {
	// ProfilePath points at a YAML branding profile. Empty means the
	// built-in Samsoft defaults.
	ProfilePath string `yaml:"profile_path"`
	// AllowUnelevated skips the elevation preflight. Writes will then fail
	// with access denied unless the key ACLs were loosened; the preflight
	// exists so an unprivileged run mutates nothing.
	AllowUnelevated bool `yaml:"allow_unelevated"`
}

type ConsoleConfig struct {
	NoColor bool `yaml:"no_color"`
	// NoPause disables the closing "press Enter" gate for scripted runs.
	NoPause bool `yaml:"no_pause"`
}

type LoggingConfig struct {
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
}

func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			File:       `C:\ProgramData\Samsoft\Rebrand\logs\rebrand.log`,
			MaxSizeMB:  5,
			MaxBackups: 3,
		},
	}
}

// Load reads the config from a YAML file. An empty path or a missing file
// yields the defaults; either way runtime overrides are applied afterwards.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		if err == nil {
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.ApplyDefaults()
	cfg.ApplyRuntimeOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Logging.File == "" {
		return errors.New("logging.file is required")
	}
	if c.Logging.MaxSizeMB <= 0 {
		return errors.New("logging.max_size_mb must be > 0")
	}
	if c.Logging.MaxBackups <= 0 {
		return errors.New("logging.max_backups must be > 0")
	}
	return nil
}

func (c *Config) ApplyDefaults() {
	if c.Logging.File == "" {
		c.Logging.File = Default().Logging.File
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 5
	}
	if c.Logging.MaxBackups == 0 {
		c.Logging.MaxBackups = 3
	}
}
