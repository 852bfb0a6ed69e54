// File: errors.go
// Title: Runtime Errors
// Description: Typed failures of a program run.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial runtime error kinds

package executor

import (
	"fmt"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
)

// Kind classifies a RuntimeError
type Kind int

const (
	KindDivisionByZero Kind = iota
	KindUndefinedVariable
	KindUndefinedArray
	KindIndexOutOfBounds
	KindInvalidLineNumber
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindDivisionByZero:
		return "division by zero"
	case KindUndefinedVariable:
		return "undefined variable"
	case KindUndefinedArray:
		return "undefined array"
	case KindIndexOutOfBounds:
		return "index out of bounds"
	case KindInvalidLineNumber:
		return "invalid line number"
	default:
		return "unknown"
	}
}

// RuntimeError aborts a run. Which fields are set depends on Kind:
// Name for variables and arrays, Index and Size for bounds failures,
// Target for invalid jumps. Line is the number of the failing line.
type RuntimeError struct {
	Kind   Kind
	Name   byte
	Index  int32
	Size   int32
	Target int32
	Line   int32
}

// Error implements the error interface
func (e *RuntimeError) Error() string {
	switch e.Kind {
	case KindDivisionByZero:
		return "Division by zero"
	case KindUndefinedVariable:
		return fmt.Sprintf("Undefined variable: %c", e.Name)
	case KindUndefinedArray:
		return fmt.Sprintf("Array %c not dimensioned", e.Name)
	case KindIndexOutOfBounds:
		return fmt.Sprintf("Index %d out of bounds for array %c (size %d)", e.Index, e.Name, e.Size)
	case KindInvalidLineNumber:
		return fmt.Sprintf("Invalid line number: %d", e.Target)
	default:
		return "Runtime error"
	}
}

// Code classifies the error for logging and reporting
func (e *RuntimeError) Code() tberror.Code {
	return tberror.CodeRuntime
}
