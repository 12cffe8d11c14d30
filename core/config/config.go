// File: config.go
// Title: Core Configuration Management
// Description: Implements loading of dbgcon configuration from TOML and YAML
//              files (selected by file extension) overlaid with DBGCON_*
//              environment variables. A missing file falls back to defaults;
//              a malformed file is a configuration error.
// Author: msto63
// Version: v0.1.0
// Created: 2026-03-14
// Modified: 2026-03-14

package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	dbgerror "github.com/msto63/dbgcon/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Config holds the dbgcon configuration
type Config struct {
	Console ConsoleConfig `toml:"console" yaml:"console"`
	Log     LogConfig     `toml:"log" yaml:"log"`
}

// ConsoleConfig configures the interactive console
type ConsoleConfig struct {
	// Prompt shown before each interactive line
	Prompt string `toml:"prompt" yaml:"prompt" env:"DBGCON_PROMPT"`

	// MaxScriptDepth bounds recursive script inclusion via @file directives
	MaxScriptDepth int `toml:"max_script_depth" yaml:"max_script_depth" env:"DBGCON_MAX_SCRIPT_DEPTH"`

	// StartupScripts are executed in order before the first prompt
	StartupScripts []string `toml:"startup_scripts" yaml:"startup_scripts" env:"DBGCON_STARTUP_SCRIPTS"`
}

// LogConfig configures the operational logger
type LogConfig struct {
	// Level is one of trace, debug, info, warn, error, fatal
	Level string `toml:"level" yaml:"level" env:"DBGCON_LOG_LEVEL"`

	// Format is one of console, text, json
	Format string `toml:"format" yaml:"format" env:"DBGCON_LOG_FORMAT"`
}

// Default returns the built-in configuration defaults
func Default() *Config {
	return &Config{
		Console: ConsoleConfig{
			Prompt:         "dbg> ",
			MaxScriptDepth: 8,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads configuration from the given path and overlays environment
// variables. An empty path skips the file and uses defaults plus environment.
// A nonexistent explicit path is an error; so is a malformed file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, dbgerror.Wrap(err, "cannot read config file").
				WithCode(dbgerror.CodeConfigError).
				WithDetail("path", path)
		}

		switch detectFormat(path) {
		case FormatYAML:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, dbgerror.Wrap(err, "invalid YAML config").
					WithCode(dbgerror.CodeInvalidConfig).
					WithDetail("path", path)
			}
		default:
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, dbgerror.Wrap(err, "invalid TOML config").
					WithCode(dbgerror.CodeInvalidConfig).
					WithDetail("path", path)
			}
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, dbgerror.Wrap(err, "invalid environment override").
			WithCode(dbgerror.CodeInvalidConfig)
	}

	if cfg.Console.MaxScriptDepth <= 0 {
		cfg.Console.MaxScriptDepth = Default().Console.MaxScriptDepth
	}

	return cfg, nil
}

// detectFormat selects the file format from the extension
func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}
