// File: lexer.go
// Title: tinyBASIC Lexical Analyzer
// Description: Converts source text into tokens. Scans runes with one rune
//              of lookahead and reports errors with the number of runes
//              consumed.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial lexer implementation
// - 2026-10-15 v0.2.0: tinyBASIC tokens, rune positions, saturating numbers

package parser

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	tberror "github.com/msto63/tinybasic/foundation/core/error"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	// Special tokens
	TokenEOF TokenType = iota

	// Literals
	TokenNumber     // 123
	TokenIdentifier // A..Z
	TokenString     // "text"

	// Keywords
	TokenPrint
	TokenLet
	TokenGoto
	TokenIf
	TokenThen
	TokenEnd
	TokenDim

	// Operators
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenEquals    // =
	TokenLess      // <
	TokenGreater   // >
	TokenLessEq    // <=
	TokenGreaterEq // >=
	TokenNotEquals // <>

	// Punctuation
	TokenLeftParen  // (
	TokenRightParen // )
	TokenComma      // ,
)

var keywords = map[string]TokenType{
	"PRINT": TokenPrint,
	"LET":   TokenLet,
	"GOTO":  TokenGoto,
	"IF":    TokenIf,
	"THEN":  TokenThen,
	"END":   TokenEnd,
	"DIM":   TokenDim,
}

// String returns the name of the token type
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenString:
		return "STRING"
	case TokenPrint:
		return "PRINT"
	case TokenLet:
		return "LET"
	case TokenGoto:
		return "GOTO"
	case TokenIf:
		return "IF"
	case TokenThen:
		return "THEN"
	case TokenEnd:
		return "END"
	case TokenDim:
		return "DIM"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenEquals:
		return "EQUALS"
	case TokenLess:
		return "LESS"
	case TokenGreater:
		return "GREATER"
	case TokenLessEq:
		return "LESS_EQ"
	case TokenGreaterEq:
		return "GREATER_EQ"
	case TokenNotEquals:
		return "NOT_EQUALS"
	case TokenLeftParen:
		return "LEFT_PAREN"
	case TokenRightParen:
		return "RIGHT_PAREN"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword reports whether the type is one of the seven keywords
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenPrint && tt <= TokenDim
}

// Token is a lexical token with its source position
type Token struct {
	Type      TokenType // Token type
	Value     string    // Source text; string literals without quotes, identifiers upper-cased
	Number    int32     // Value of a TokenNumber
	Saturated bool      // TokenNumber digits exceeded the int32 range
	Position  int       // Rune offset of the first character (0-based)
	Line      int       // Line number (1-based)
	Column    int       // Column number (1-based, in runes)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return fmt.Sprintf("NUMBER(%d)", t.Number)
	case TokenIdentifier:
		return "IDENTIFIER(" + t.Value + ")"
	case TokenString:
		return fmt.Sprintf("STRING(%q)", t.Value)
	default:
		if t.Type.IsKeyword() {
			return t.Type.String()
		}
		return t.Type.String() + "(" + t.Value + ")"
	}
}

// LexError is a tokenizer failure. Position counts the runes consumed when
// the error was detected, including the offending one.
type LexError struct {
	Message  string
	Position int
}

// Error implements the error interface
func (e *LexError) Error() string {
	return fmt.Sprintf("%s at position %d", e.Message, e.Position)
}

// Code classifies the error for logging and reporting
func (e *LexError) Code() tberror.Code {
	return tberror.CodeLexical
}

// Lexer performs lexical analysis of tinyBASIC source
type Lexer struct {
	input  []rune
	pos    int // index of the next unread rune
	line   int
	column int
}

// NewLexer creates a new lexer for the given input
func NewLexer(input string) *Lexer {
	return &Lexer{
		input:  []rune(input),
		line:   1,
		column: 1,
	}
}

func (l *Lexer) peek() (rune, bool) {
	if l.pos >= len(l.input) {
		return 0, false
	}
	return l.input[l.pos], true
}

func (l *Lexer) advance() (rune, bool) {
	ch, ok := l.peek()
	if !ok {
		return 0, false
	}
	l.pos++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch, true
}

func (l *Lexer) errorf(format string, args ...interface{}) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Position: l.pos}
}

// skipSeparators consumes whitespace; newlines act only as separators
func (l *Lexer) skipSeparators() {
	for {
		ch, ok := l.peek()
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		l.advance()
	}
}

// NextToken returns the next token, or a TokenEOF token at the end of input
func (l *Lexer) NextToken() (Token, error) {
	l.skipSeparators()

	tok := Token{Position: l.pos, Line: l.line, Column: l.column}
	ch, ok := l.advance()
	if !ok {
		tok.Type = TokenEOF
		return tok, nil
	}

	switch {
	case ch == '+':
		tok.Type = TokenPlus
	case ch == '-':
		tok.Type = TokenMinus
	case ch == '*':
		tok.Type = TokenStar
	case ch == '/':
		tok.Type = TokenSlash
	case ch == '(':
		tok.Type = TokenLeftParen
	case ch == ')':
		tok.Type = TokenRightParen
	case ch == ',':
		tok.Type = TokenComma
	case ch == '=':
		tok.Type = TokenEquals
	case ch == '<':
		tok.Type = TokenLess
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			tok.Type = TokenLessEq
		} else if ok && next == '>' {
			l.advance()
			tok.Type = TokenNotEquals
		}
	case ch == '>':
		tok.Type = TokenGreater
		if next, ok := l.peek(); ok && next == '=' {
			l.advance()
			tok.Type = TokenGreaterEq
		}
	case ch == '"':
		return l.readString(tok)
	case isDigit(ch):
		return l.readNumber(tok, ch), nil
	case isLetter(ch):
		return l.readWord(tok, ch)
	default:
		return tok, l.errorf("Unexpected character: %c", ch)
	}

	tok.Value = string(l.input[tok.Position:l.pos])
	return tok, nil
}

func (l *Lexer) readString(tok Token) (Token, error) {
	start := l.pos
	for {
		ch, ok := l.advance()
		if !ok {
			return tok, l.errorf("Unterminated string")
		}
		if ch == '"' {
			break
		}
	}
	tok.Type = TokenString
	tok.Value = string(l.input[start : l.pos-1])
	return tok, nil
}

// readNumber accumulates a digit run, saturating at math.MaxInt32
func (l *Lexer) readNumber(tok Token, first rune) Token {
	value := int64(first - '0')
	for {
		ch, ok := l.peek()
		if !ok || !isDigit(ch) {
			break
		}
		l.advance()
		if value <= math.MaxInt32 {
			value = value*10 + int64(ch-'0')
		}
	}
	if value > math.MaxInt32 {
		value = math.MaxInt32
		tok.Saturated = true
	}
	tok.Type = TokenNumber
	tok.Number = int32(value)
	tok.Value = string(l.input[tok.Position:l.pos])
	return tok
}

func (l *Lexer) readWord(tok Token, first rune) (Token, error) {
	var b strings.Builder
	b.WriteRune(unicode.ToUpper(first))
	for {
		ch, ok := l.peek()
		if !ok || !(isLetter(ch) || isDigit(ch)) {
			break
		}
		l.advance()
		b.WriteRune(unicode.ToUpper(ch))
	}
	word := b.String()

	if kw, ok := keywords[word]; ok {
		tok.Type = kw
		tok.Value = word
		return tok, nil
	}
	if len(word) == 1 {
		tok.Type = TokenIdentifier
		tok.Value = word
		return tok, nil
	}
	return tok, l.errorf("Invalid identifier: %s", word)
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return (ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')
}

// Tokenize converts the whole input into tokens. The result does not
// include the trailing EOF token.
func Tokenize(input string) ([]Token, error) {
	l := NewLexer(input)
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		if tok.Type == TokenEOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
