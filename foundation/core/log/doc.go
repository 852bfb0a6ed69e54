// Package log provides structured logging for the tinyBASIC toolchain.
//
// Package: log
// Title: tinyBASIC Structured Logging
// Description: Leveled, field-based logging with text, console and JSON output.
//              Loggers are immutable: every With* call returns a configured
//              copy, so components can derive tagged child loggers freely.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2026-10-15 v0.2.0: Run IDs replace request/user IDs, async mode removed
//
// Usage:
//
//	import tblog "github.com/msto63/tinybasic/foundation/core/log"
//
//	logger := tblog.NewWithConfig(tblog.Config{Level: tblog.LevelDebug, Format: tblog.FormatText}).
//		WithField("component", "shell").
//		WithRunID(runID)
//
//	logger.Info("program loaded", tblog.Fields{"lines": 12})
//
//	timer := logger.StartTimer("run")
//	// ... execute
//	timer.Stop()
package log
