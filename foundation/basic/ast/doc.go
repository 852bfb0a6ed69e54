// File: doc.go
// Title: tinyBASIC Syntax Tree Package Documentation
// Description: Defines the token-free syntax tree for tinyBASIC programs:
//              expressions, statements, numbered lines and programs, plus
//              a visitor and a source renderer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST implementation
// - 2026-10-15 v0.2.0: tinyBASIC node set, source renderer

/*
Package ast defines the syntax tree produced by the tinyBASIC parser and
consumed by the executor.

A Program is an ordered slice of Lines. Each Line carries a 32-bit line
number and exactly one statement:

	PRINT item, item, ...
	LET V = expr
	LET V(index) = expr
	GOTO n
	IF expr THEN n
	END
	DIM V(size)

Expressions are integer literals, the 26 single-letter variables, array
element accesses and binary operations. Unary minus has no node of its own;
the parser desugars -x to (0 - x).

Nodes are immutable once built. Format and FormatLine render nodes back to
source text that re-parses to the same program.
*/
package ast
