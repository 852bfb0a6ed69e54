// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used across tinyBASIC. Codes classify
//              failures for logging and for the shell's error reporting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-15 v0.2.0: Language codes (lexical, syntax, runtime) replace TCOL codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeInterrupted  Code = "INTERRUPTED"

	// Language pipeline
	CodeLexical Code = "LEXICAL"
	CodeSyntax  Code = "SYNTAX"
	CodeRuntime Code = "RUNTIME"

	// Tooling
	CodeStorage Code = "STORAGE"
	CodeConfig  Code = "CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInterrupted,
		CodeLexical, CodeSyntax, CodeRuntime,
		CodeStorage, CodeConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexical, CodeSyntax, CodeRuntime:
		return "language"
	case CodeStorage, CodeNotFound:
		return "storage"
	case CodeConfig:
		return "configuration"
	default:
		return "generic"
	}
}
