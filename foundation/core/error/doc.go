// Package error provides coded, contextual errors for the tinyBASIC toolchain.
//
// Package: error
// Title: tinyBASIC Error Handling
// Description: Structured errors with a code, a severity, free-form details and
//              an optional cause. The language front-end and the evaluator keep
//              their own error types; this package classifies them and carries
//              the failures of the surrounding tooling (config, storage, shell).
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Reduced to the tinyBASIC code set, dropped stack traces
//
// Usage:
//
//	import tberror "github.com/msto63/tinybasic/foundation/core/error"
//
//	err := tberror.Wrap(ioErr, "cannot load program").
//		WithCode(tberror.CodeStorage).
//		WithDetail("name", "hello.bas")
//
//	if tberror.HasCode(err, tberror.CodeNotFound) {
//		// ...
//	}
package error
