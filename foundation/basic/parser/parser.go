// File: parser.go
// Title: tinyBASIC Recursive Descent Parser
// Description: Builds an ast.Program from tokens using recursive descent
//              with a fixed precedence ladder, then stably sorts the lines
//              by number.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser implementation
// - 2026-10-15 v0.2.0: tinyBASIC statements, strict statement boundaries

package parser

import (
	"fmt"
	"sort"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// Kind classifies a ParseError
type Kind int

const (
	// KindLexical wraps a *LexError
	KindLexical Kind = iota
	// KindUnexpectedEnd means the input ended inside a statement
	KindUnexpectedEnd
	// KindUnexpectedToken names the offending token
	KindUnexpectedToken
	// KindInvalidLineNumber means a line number or jump target does not fit in 32 bits
	KindInvalidLineNumber
)

// String returns the name of the kind
func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical"
	case KindUnexpectedEnd:
		return "unexpected end"
	case KindUnexpectedToken:
		return "unexpected token"
	case KindInvalidLineNumber:
		return "invalid line number"
	default:
		return "unknown"
	}
}

// ParseError is a syntax error. Parsing stops at the first one.
type ParseError struct {
	Kind    Kind
	Message string // detail for KindUnexpectedToken and KindInvalidLineNumber
	Token   Token  // offending token, zero for KindLexical and KindUnexpectedEnd
	Err     error  // the *LexError for KindLexical
}

// Error implements the error interface
func (pe *ParseError) Error() string {
	switch pe.Kind {
	case KindLexical:
		return pe.Err.Error()
	case KindUnexpectedEnd:
		return "Unexpected end of input"
	default:
		return fmt.Sprintf("%s at line %d, column %d", pe.Message, pe.Token.Line, pe.Token.Column)
	}
}

// Unwrap exposes the lexical error
func (pe *ParseError) Unwrap() error {
	return pe.Err
}

// Code classifies the error for logging and reporting
func (pe *ParseError) Code() tberror.Code {
	if pe.Kind == KindLexical {
		return tberror.CodeLexical
	}
	return tberror.CodeSyntax
}

// Options configures parser behavior
type Options struct {
	Logger *tblog.Logger
}

// Parser implements recursive descent parsing for tinyBASIC.
// A Parser is not safe for concurrent use.
type Parser struct {
	tokens []Token
	pos    int
	logger *tblog.Logger
}

// New creates a parser with the given options
func New(opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = tblog.GetDefault()
	}
	return &Parser{
		logger: opts.Logger.WithField("component", "basic-parser"),
	}
}

// Parse tokenizes and parses source text
func (p *Parser) Parse(input string) (tbast.Program, error) {
	tokens, err := Tokenize(input)
	if err != nil {
		p.logger.Debug("tokenizing failed", tblog.Fields{"error": err.Error()})
		return nil, &ParseError{Kind: KindLexical, Err: err}
	}
	return p.ParseTokens(tokens)
}

// ParseTokens parses a token stream. Lines are read while the next token is
// a line number; the result is sorted by line number, keeping duplicates in
// input order.
func (p *Parser) ParseTokens(tokens []Token) (tbast.Program, error) {
	p.tokens = tokens
	p.pos = 0

	var program tbast.Program
	for p.check(TokenNumber) {
		line, err := p.parseLine()
		if err != nil {
			p.logger.Debug("parsing failed", tblog.Fields{
				"error": err.Error(),
				"lines": len(program),
			})
			return nil, err
		}
		program = append(program, line)
	}

	sort.SliceStable(program, func(i, j int) bool {
		return program[i].Number < program[j].Number
	})

	p.logger.Debug("parsed program", tblog.Fields{
		"tokens": len(tokens),
		"lines":  len(program),
	})
	return program, nil
}

func (p *Parser) current() Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return Token{Type: TokenEOF}
}

func (p *Parser) atEnd() bool {
	return p.pos >= len(p.tokens)
}

func (p *Parser) check(tt TokenType) bool {
	return !p.atEnd() && p.tokens[p.pos].Type == tt
}

func (p *Parser) advance() Token {
	tok := p.current()
	if !p.atEnd() {
		p.pos++
	}
	return tok
}

func (p *Parser) unexpected(expected string) error {
	if p.atEnd() {
		return &ParseError{Kind: KindUnexpectedEnd}
	}
	tok := p.current()
	return &ParseError{
		Kind:    KindUnexpectedToken,
		Message: fmt.Sprintf("Expected %s, got %s", expected, tok),
		Token:   tok,
	}
}

func (p *Parser) expect(tt TokenType, expected string) (Token, error) {
	if !p.check(tt) {
		return Token{}, p.unexpected(expected)
	}
	return p.advance(), nil
}

// expectLineNumber consumes a line number literal
func (p *Parser) expectLineNumber() (int32, error) {
	tok, err := p.expect(TokenNumber, "line number")
	if err != nil {
		return 0, err
	}
	if tok.Saturated {
		return 0, &ParseError{
			Kind:    KindInvalidLineNumber,
			Message: "Invalid line number " + tok.Value,
			Token:   tok,
		}
	}
	return tok.Number, nil
}

func (p *Parser) parseLine() (tbast.Line, error) {
	number, err := p.expectLineNumber()
	if err != nil {
		return tbast.Line{}, err
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return tbast.Line{}, err
	}
	// A statement ends at the next line number or the end of input.
	if !p.atEnd() && !p.check(TokenNumber) {
		return tbast.Line{}, p.unexpected("end of statement")
	}
	return tbast.Line{Number: number, Stmt: stmt}, nil
}

func (p *Parser) parseStatement() (tbast.Stmt, error) {
	switch p.current().Type {
	case TokenPrint:
		p.advance()
		return p.parsePrint()
	case TokenLet:
		p.advance()
		return p.parseLet()
	case TokenGoto:
		p.advance()
		target, err := p.expectLineNumber()
		if err != nil {
			return nil, err
		}
		return &tbast.GotoStmt{Target: target}, nil
	case TokenIf:
		p.advance()
		return p.parseIf()
	case TokenEnd:
		p.advance()
		return &tbast.EndStmt{}, nil
	case TokenDim:
		p.advance()
		return p.parseDim()
	default:
		return nil, p.unexpected("statement")
	}
}

// startsExpression reports whether the current token can begin an expression
func (p *Parser) startsExpression() bool {
	switch p.current().Type {
	case TokenNumber, TokenIdentifier, TokenLeftParen, TokenMinus:
		return true
	}
	return false
}

func (p *Parser) parsePrint() (tbast.Stmt, error) {
	stmt := &tbast.PrintStmt{}
	for {
		switch {
		case p.check(TokenString):
			stmt.Items = append(stmt.Items, tbast.PrintItem{Text: p.advance().Value})
		case p.startsExpression():
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			stmt.Items = append(stmt.Items, tbast.PrintItem{Expr: expr})
		case p.check(TokenComma):
			// stray separator
			p.advance()
			continue
		default:
			return stmt, nil
		}

		if !p.check(TokenComma) {
			return stmt, nil
		}
		p.advance()
	}
}

func (p *Parser) parseLet() (tbast.Stmt, error) {
	name, err := p.expect(TokenIdentifier, "variable")
	if err != nil {
		return nil, err
	}
	letter := name.Value[0]

	if p.check(TokenLeftParen) {
		p.advance()
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen, ")"); err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenEquals, "="); err != nil {
			return nil, err
		}
		value, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return &tbast.LetArrayStmt{Name: letter, Index: index, Value: value}, nil
	}

	if _, err := p.expect(TokenEquals, "="); err != nil {
		return nil, err
	}
	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	return &tbast.LetStmt{Name: letter, Value: value}, nil
}

func (p *Parser) parseIf() (tbast.Stmt, error) {
	cond, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenThen, "THEN"); err != nil {
		return nil, err
	}
	target, err := p.expectLineNumber()
	if err != nil {
		return nil, err
	}
	return &tbast.IfStmt{Cond: cond, Target: target}, nil
}

func (p *Parser) parseDim() (tbast.Stmt, error) {
	name, err := p.expect(TokenIdentifier, "array name")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenLeftParen, "("); err != nil {
		return nil, err
	}
	negative := false
	if p.check(TokenMinus) {
		p.advance()
		negative = true
	}
	size, err := p.expect(TokenNumber, "array size")
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(TokenRightParen, ")"); err != nil {
		return nil, err
	}
	n := size.Number
	if negative {
		n = -n
	}
	return &tbast.DimStmt{Name: name.Value[0], Size: n}, nil
}

func (p *Parser) parseExpr() (tbast.Expr, error) {
	return p.parseComparison()
}

var comparisonOps = map[TokenType]tbast.BinaryOp{
	TokenEquals:    tbast.OpEq,
	TokenNotEquals: tbast.OpNe,
	TokenLess:      tbast.OpLt,
	TokenLessEq:    tbast.OpLe,
	TokenGreater:   tbast.OpGt,
	TokenGreaterEq: tbast.OpGe,
}

// parseComparison applies at most one comparison operator
func (p *Parser) parseComparison() (tbast.Expr, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	op, ok := comparisonOps[p.current().Type]
	if !ok || p.atEnd() {
		return left, nil
	}
	p.advance()
	right, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	return &tbast.BinaryExpr{Left: left, Op: op, Right: right}, nil
}

func (p *Parser) parseAdditive() (tbast.Expr, error) {
	left, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.check(TokenPlus) || p.check(TokenMinus) {
		op := tbast.OpAdd
		if p.advance().Type == TokenMinus {
			op = tbast.OpSub
		}
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		left = &tbast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

func (p *Parser) parseMultiplicative() (tbast.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.check(TokenStar) || p.check(TokenSlash) {
		op := tbast.OpMul
		if p.advance().Type == TokenSlash {
			op = tbast.OpDiv
		}
		right, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		left = &tbast.BinaryExpr{Left: left, Op: op, Right: right}
	}
	return left, nil
}

// parseUnary rewrites -x as 0 - x
func (p *Parser) parseUnary() (tbast.Expr, error) {
	if p.check(TokenMinus) {
		p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &tbast.BinaryExpr{Left: &tbast.NumberExpr{Value: 0}, Op: tbast.OpSub, Right: operand}, nil
	}
	return p.parsePrimary()
}

func (p *Parser) parsePrimary() (tbast.Expr, error) {
	switch {
	case p.check(TokenNumber):
		return &tbast.NumberExpr{Value: p.advance().Number}, nil
	case p.check(TokenIdentifier):
		letter := p.advance().Value[0]
		if !p.check(TokenLeftParen) {
			return &tbast.VariableExpr{Name: letter}, nil
		}
		p.advance()
		index, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen, ")"); err != nil {
			return nil, err
		}
		return &tbast.ArrayExpr{Name: letter, Index: index}, nil
	case p.check(TokenLeftParen):
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen, ")"); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, p.unexpected("expression")
	}
}
