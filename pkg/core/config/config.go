// ============================================================================
// tinyBASIC - Line-numbered BASIC interpreter
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// EnvConfigPath names the environment variable holding a config file path
const EnvConfigPath = "TBASIC_CONFIG"

// Storage backends
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Shell   ShellConfig   `toml:"shell" yaml:"shell"`
	Storage StorageConfig `toml:"storage" yaml:"storage"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ShellConfig holds interactive shell settings
type ShellConfig struct {
	Prompt string `toml:"prompt" yaml:"prompt"`
	Banner bool   `toml:"banner" yaml:"banner"`
	Color  bool   `toml:"color" yaml:"color"`
}

// StorageConfig selects where LOAD and SAVE keep programs
type StorageConfig struct {
	Backend     string   `toml:"backend" yaml:"backend"`
	Dir         string   `toml:"dir" yaml:"dir"`
	Path        string   `toml:"path" yaml:"path"`
	BusyTimeout Duration `toml:"busy_timeout" yaml:"busy_timeout"`
}

// Duration wraps time.Duration for text based config formats
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// UnmarshalYAML implements yaml.Unmarshaler
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// Default returns the configuration used when no file is found
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel:  "warn",
			LogFormat: "text",
		},
		Shell: ShellConfig{
			Prompt: "> ",
			Banner: true,
			Color:  true,
		},
		Storage: StorageConfig{
			Backend:     BackendFile,
			Dir:         ".",
			Path:        "./data/programs.db",
			BusyTimeout: Duration{5 * time.Second},
		},
	}
}

// Load reads a TOML or YAML file, chosen by extension. Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, tberror.Newf("config file not found: %s", path).
				WithCode(tberror.CodeNotFound).
				WithDetail("path", path)
		}
		return nil, tberror.Wrap(err, "failed to read config").WithCode(tberror.CodeConfig)
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml", "":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, tberror.Newf("unsupported config format: %s", filepath.Ext(path)).
			WithCode(tberror.CodeConfig).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, tberror.Wrap(err, "failed to parse config").
			WithCode(tberror.CodeConfig).
			WithDetail("path", path)
	}

	cfg.applyDefaults()
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Candidates returns the paths searched for a config file, in order
func Candidates(explicit string) []string {
	var paths []string
	if explicit != "" {
		paths = append(paths, explicit)
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		paths = append(paths, env)
	}
	paths = append(paths, "tbasic.toml", "tbasic.yaml")
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "tbasic", "config.toml"))
	}
	return paths
}

// Resolve returns the first existing config file, or "" when there is none.
// An explicit path that does not exist is an error.
func Resolve(explicit string) (string, error) {
	for i, path := range Candidates(explicit) {
		if _, err := os.Stat(os.ExpandEnv(path)); err == nil {
			return path, nil
		}
		if i == 0 && explicit != "" {
			return "", tberror.Newf("config file not found: %s", explicit).
				WithCode(tberror.CodeNotFound).
				WithDetail("path", explicit)
		}
	}
	return "", nil
}

// LoadFromEnv resolves the config file from explicit, TBASIC_CONFIG and the
// default locations, then applies TBASIC_* overrides. Without any file the
// defaults are used.
func LoadFromEnv(explicit string) (*Config, error) {
	path, err := Resolve(explicit)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if path != "" {
		if cfg, err = Load(path); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("TBASIC_LOG_LEVEL"); v != "" {
		cfg.General.LogLevel = v
	}
	if v := os.Getenv("TBASIC_LOG_FORMAT"); v != "" {
		cfg.General.LogFormat = v
	}
	if v := os.Getenv("TBASIC_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("TBASIC_STORAGE_DIR"); v != "" {
		cfg.Storage.Dir = v
	}
	if v := os.Getenv("TBASIC_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	d := Default()
	if c.General.LogLevel == "" {
		c.General.LogLevel = d.General.LogLevel
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = d.General.LogFormat
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = d.Storage.Backend
	}
	if c.Storage.Dir == "" {
		c.Storage.Dir = d.Storage.Dir
	}
	if c.Storage.Path == "" {
		c.Storage.Path = d.Storage.Path
	}
	if c.Storage.BusyTimeout.Duration <= 0 {
		c.Storage.BusyTimeout = d.Storage.BusyTimeout
	}
}

func (c *Config) expandEnvVars() {
	c.Storage.Dir = os.ExpandEnv(c.Storage.Dir)
	c.Storage.Path = os.ExpandEnv(c.Storage.Path)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	if _, err := tblog.ParseLevel(c.General.LogLevel); err != nil {
		return tberror.Wrap(err, "general.log_level").WithCode(tberror.CodeConfig)
	}
	if _, err := tblog.ParseFormat(c.General.LogFormat); err != nil {
		return tberror.Wrap(err, "general.log_format").WithCode(tberror.CodeConfig)
	}
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return tberror.New(fmt.Sprintf("storage.backend: unknown backend %q", c.Storage.Backend)).
			WithCode(tberror.CodeConfig)
	}
	return nil
}
