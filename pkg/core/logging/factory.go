// ============================================================================
// tinyBASIC - Line-numbered BASIC interpreter
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from configuration
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: text, console or json (default: text)
	Format string

	// Verbose forces debug level regardless of Level
	Verbose bool

	// Output defaults to stderr, keeping stdout for program output
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// FromConfig derives the logger configuration from the application config
func FromConfig(serviceName string, cfg *config.Config, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	lc.Verbose = verbose
	return lc
}

// NewLogger creates a logger. Unknown levels and formats fall back to the
// defaults; config validation reports them earlier.
func NewLogger(cfg LoggerConfig) *tblog.Logger {
	level := parseLevel(cfg.Level)
	if cfg.Verbose && level > tblog.LevelDebug {
		level = tblog.LevelDebug
	}

	format, err := tblog.ParseFormat(cfg.Format)
	if err != nil {
		format = tblog.FormatText
	}

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return tblog.NewWithConfig(tblog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(serviceName string) *tblog.Logger {
	return NewLogger(DefaultLoggerConfig(serviceName))
}

// parseLevel converts a string level to tblog.Level
func parseLevel(level string) tblog.Level {
	l, err := tblog.ParseLevel(level)
	if err != nil {
		return tblog.DefaultLevel()
	}
	return l
}
