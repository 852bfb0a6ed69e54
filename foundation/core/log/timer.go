// File: timer.go
// Title: Operation Timer
// Description: Measures how long an operation takes and logs the result.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: StopWithError added

package log

import (
	"time"
)

// Timer tracks the duration of a single operation
type Timer struct {
	logger    *Logger
	operation string
	start     time.Time
	fields    Fields
}

// StartTimer starts timing an operation
func (l *Logger) StartTimer(operation string) *Timer {
	return &Timer{
		logger:    l,
		operation: operation,
		start:     time.Now(),
		fields:    make(Fields),
	}
}

// WithField adds a field reported when the timer stops
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop logs the completed operation at debug level and returns its duration
func (t *Timer) Stop() time.Duration {
	d := time.Since(t.start)
	entry := t.logger.entry(LevelDebug, t.operation+" completed", t.fields)
	entry.Duration = d
	t.logger.write(entry)
	return d
}

// StopWithError logs the operation as failed when err is non-nil
func (t *Timer) StopWithError(err error) time.Duration {
	if err == nil {
		return t.Stop()
	}
	d := time.Since(t.start)
	entry := t.logger.entry(LevelWarn, t.operation+" failed", t.fields)
	entry.Duration = d
	entry.Error = err
	t.logger.write(entry)
	return d
}
