// File: format.go
// Title: Log Output Formatters
// Description: Renders log entries as text, colored console or JSON lines.
//              Field order is sorted so output is stable across runs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text and console formatters
// - 2026-10-15 v0.2.0: Sorted fields, logfmt format removed

package log

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Format names an output format
type Format string

const (
	// FormatText is a plain single line format
	FormatText Format = "text"
	// FormatConsole is the text format with ANSI colors
	FormatConsole Format = "console"
	// FormatJSON writes one JSON object per line
	FormatJSON Format = "json"
)

// ParseFormat parses a string into a Format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "text", "":
		return FormatText, nil
	case "console", "color":
		return FormatConsole, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, &ParseError{Input: format, Type: "format"}
	}
}

// Formatter renders an entry into bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

// TextFormatter renders `time LEVEL [logger] message key=value ...`
type TextFormatter struct {
	Colors bool
}

// Format implements Formatter
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	var b strings.Builder

	b.WriteString(entry.Timestamp.Format(timeLayout))
	b.WriteByte(' ')
	if f.Colors {
		b.WriteString(entry.Level.Color())
		b.WriteString(entry.Level.ShortString())
		b.WriteString("\033[0m")
	} else {
		b.WriteString(entry.Level.ShortString())
	}
	if entry.Logger != "" {
		fmt.Fprintf(&b, " [%s]", entry.Logger)
	}
	b.WriteByte(' ')
	b.WriteString(entry.Message)

	if entry.RunID != "" {
		writePair(&b, "run_id", entry.RunID)
	}
	for _, k := range entry.Fields.Keys() {
		writePair(&b, k, entry.Fields[k])
	}
	if entry.Duration > 0 {
		writePair(&b, "duration_ms", float64(entry.Duration.Microseconds())/1000)
	}
	if entry.Error != nil {
		writePair(&b, "error", entry.Error.Error())
	}
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

func writePair(b *strings.Builder, key string, value interface{}) {
	b.WriteByte(' ')
	b.WriteString(key)
	b.WriteByte('=')
	s := fmt.Sprint(value)
	if strings.ContainsAny(s, " \t\"=") {
		s = fmt.Sprintf("%q", s)
	}
	b.WriteString(s)
}

// JSONFormatter renders entries as JSON lines
type JSONFormatter struct{}

// Format implements Formatter
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	obj := make(map[string]interface{}, len(entry.Fields)+6)
	for k, v := range entry.Fields {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		obj[k] = v
	}
	obj["time"] = entry.Timestamp.Format(time.RFC3339Nano)
	obj["level"] = entry.Level.String()
	obj["msg"] = entry.Message
	if entry.Logger != "" {
		obj["logger"] = entry.Logger
	}
	if entry.RunID != "" {
		obj["run_id"] = entry.RunID
	}
	if entry.Duration > 0 {
		obj["duration_ms"] = float64(entry.Duration.Microseconds()) / 1000
	}
	if entry.Error != nil {
		obj["error"] = entry.Error.Error()
	}

	data, err := json.Marshal(obj)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// GetFormatter returns the formatter for a format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{}
	case FormatConsole:
		return &TextFormatter{Colors: true}
	default:
		return &TextFormatter{}
	}
}
