// File: doc.go
// Title: tinyBASIC Parser Package Documentation
// Description: Tokenizer and recursive-descent parser for tinyBASIC.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: tinyBASIC grammar

/*
Package parser turns tinyBASIC source text into an ast.Program.

The Lexer produces a flat token stream. Newlines only separate tokens, so a
whole file is one stream containing many numbered lines. The Parser reads
lines until the stream ends or the next token is not a line number, then
sorts them by number. The sort is stable: duplicate line numbers are kept in
their original order.

Expression precedence, lowest first:

	comparison      expr (= <> < <= > >=) expr, at most one operator
	additive        + -  left associative
	multiplicative  * /  left associative
	unary           leading -, rewritten as 0 - x
	primary         number, variable, variable(expr), (expr)

After each statement the next token must be a line number or the end of
input; anything else is a syntax error.
*/
package parser
