// ============================================================================
// tinyBASIC - Line-numbered BASIC interpreter
// ============================================================================
//
// Package:     version
// Description: Central version management for the tinyBASIC components
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for all tinyBASIC components
const (
	// Release version of the tbasic binary
	Release = "0.2.0"

	// Component versions
	Core    = "0.2.0"
	Shell   = "0.2.0"
	Storage = "0.1.0"

	// Dialect names the language level accepted by the parser
	Dialect = "tinyBASIC-1"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "core", "parser", "executor":
		return Core
	case "shell":
		return Shell
	case "storage":
		return Storage
	default:
		return Release
	}
}
