// File: doc.go
// Title: tinyBASIC Executor Package Documentation
// Description: Tree-walking interpreter for parsed tinyBASIC programs.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-15 v0.2.0: tinyBASIC interpreter

/*
Package executor runs an ast.Program.

An Interpreter owns the execution state of one program: the 26 integer
variables A..Z (all zero at the start of a run), the arrays created by DIM
and a cursor into the program. Run starts at the first line and follows
program order until END, the last line, or a runtime error. GOTO and IF
jump to the first line carrying the target number.

Arithmetic is 32-bit two's complement and wraps on overflow. Division
truncates toward zero; dividing by zero is a runtime error.

PRINT output goes to a Sink, one call per printed line.
*/
package executor
