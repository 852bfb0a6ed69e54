// File: logger.go
// Title: Structured Logger
// Description: Leveled logger with context fields, run IDs and error
//              integration. Child loggers share the writer and its lock.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Synchronous only, run ID context, severity aware LogError

package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
)

// Config configures a new Logger
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// DefaultConfig returns a warn-level text logger writing to stderr
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel(),
		Format: FormatText,
		Output: os.Stderr,
	}
}

// Logger writes structured entries. The zero value is not usable; use New.
type Logger struct {
	level     Level
	formatter Formatter
	output    io.Writer
	mu        *sync.Mutex
	name      string
	runID     string
	fields    Fields
}

// New creates a logger with the default configuration
func New() *Logger {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a logger from config
func NewWithConfig(config Config) *Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}
	return &Logger{
		level:     config.Level,
		formatter: GetFormatter(config.Format),
		output:    config.Output,
		mu:        &sync.Mutex{},
		name:      config.Name,
		fields:    make(Fields),
	}
}

// Discard returns a logger that drops everything
func Discard() *Logger {
	return NewWithConfig(Config{Level: LevelFatal + 1, Output: io.Discard})
}

func (l *Logger) clone() *Logger {
	c := *l
	c.fields = make(Fields, len(l.fields))
	for k, v := range l.fields {
		c.fields[k] = v
	}
	return &c
}

// WithName returns a child logger with a different name
func (l *Logger) WithName(name string) *Logger {
	c := l.clone()
	c.name = name
	return c
}

// WithRunID returns a child logger tagged with a program run ID
func (l *Logger) WithRunID(runID string) *Logger {
	c := l.clone()
	c.runID = runID
	return c
}

// WithField returns a child logger with an extra context field
func (l *Logger) WithField(key string, value interface{}) *Logger {
	c := l.clone()
	c.fields[key] = value
	return c
}

// WithFields returns a child logger with extra context fields
func (l *Logger) WithFields(fields Fields) *Logger {
	c := l.clone()
	for k, v := range fields {
		c.fields[k] = v
	}
	return c
}

// RunID returns the run ID attached to this logger
func (l *Logger) RunID() string {
	return l.runID
}

// GetLevel returns the minimum level
func (l *Logger) GetLevel() Level {
	return l.level
}

// SetLevel changes the minimum level of this logger only
func (l *Logger) SetLevel(level Level) {
	l.level = level
}

// IsLevelEnabled reports whether entries at level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return level.ShouldLog(l.level)
}

// Trace logs at trace level
func (l *Logger) Trace(msg string, fields ...Fields) {
	l.log(LevelTrace, msg, nil, fields)
}

// Debug logs at debug level
func (l *Logger) Debug(msg string, fields ...Fields) {
	l.log(LevelDebug, msg, nil, fields)
}

// Info logs at info level
func (l *Logger) Info(msg string, fields ...Fields) {
	l.log(LevelInfo, msg, nil, fields)
}

// Warn logs at warn level
func (l *Logger) Warn(msg string, fields ...Fields) {
	l.log(LevelWarn, msg, nil, fields)
}

// Error logs at error level
func (l *Logger) Error(msg string, fields ...Fields) {
	l.log(LevelError, msg, nil, fields)
}

// Fatal logs at fatal level and exits the process
func (l *Logger) Fatal(msg string, fields ...Fields) {
	l.log(LevelFatal, msg, nil, fields)
	os.Exit(1)
}

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) {
	if l.IsLevelEnabled(LevelDebug) {
		l.log(LevelDebug, fmt.Sprintf(format, args...), nil, nil)
	}
}

// WarnWithErr logs err at warn level
func (l *Logger) WarnWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelWarn, msg, err, fields)
}

// ErrorWithErr logs err at error level
func (l *Logger) ErrorWithErr(msg string, err error, fields ...Fields) {
	l.log(LevelError, msg, err, fields)
}

// LogError logs err at a level derived from its error code severity.
// Low severity errors (user mistakes in programs) are logged at debug level.
func (l *Logger) LogError(msg string, err error, fields ...Fields) {
	if err == nil {
		return
	}
	level := LevelError
	switch tberror.GetSeverity(err) {
	case tberror.SeverityLow:
		level = LevelDebug
	case tberror.SeverityMedium:
		level = LevelWarn
	}
	extra := Fields{}
	if code := tberror.GetCode(err); code != tberror.CodeUnknown {
		extra["code"] = string(code)
	}
	l.log(level, msg, err, append(fields, extra))
}

func (l *Logger) entry(level Level, msg string, fields Fields) *Entry {
	e := NewEntry(level, msg)
	e.Logger = l.name
	e.RunID = l.runID
	e.Fields = l.fields.Merge(fields)
	return e
}

func (l *Logger) log(level Level, msg string, err error, fields []Fields) {
	if !l.IsLevelEnabled(level) {
		return
	}
	var merged Fields
	for _, f := range fields {
		merged = merged.Merge(f)
	}
	e := l.entry(level, msg, merged)
	e.Error = err
	l.write(e)
}

func (l *Logger) write(e *Entry) {
	if !l.IsLevelEnabled(e.Level) {
		return
	}
	data, err := l.formatter.Format(e)
	if err != nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.output.Write(data)
}

var (
	defaultMu     sync.RWMutex
	defaultLogger = New()
)

// GetDefault returns the process wide logger
func GetDefault() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process wide logger
func SetDefault(logger *Logger) {
	if logger == nil {
		return
	}
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = logger
}
