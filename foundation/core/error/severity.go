// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels decide how loudly an error is logged.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-15 v0.2.0: Severity mapping for the tinyBASIC code set

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers mistakes in user input: bad source text, unknown names
	SeverityLow Severity = iota

	// SeverityMedium covers failures of a single operation the user can retry
	SeverityMedium

	// SeverityHigh covers failures of the environment (storage, configuration)
	SeverityHigh

	// SeverityCritical covers broken invariants inside the toolchain
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeStorage, CodeConfig:
		return SeverityHigh
	case CodeLexical, CodeSyntax, CodeInvalidInput, CodeNotFound, CodeInterrupted:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
