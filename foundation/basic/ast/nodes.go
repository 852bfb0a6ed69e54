// File: nodes.go
// Title: tinyBASIC Syntax Tree Nodes
// Description: Expression and statement node types, numbered lines and the
//              program container with line number lookup.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial AST node definitions
// - 2026-10-15 v0.2.0: Expression and statement nodes for tinyBASIC

package ast

import (
	"fmt"
)

// Node is implemented by every expression and statement
type Node interface {
	// String returns the source rendering of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}
}

// Expr is an integer valued expression
type Expr interface {
	Node
	exprNode()
}

// Stmt is a single statement of a numbered line
type Stmt interface {
	Node
	stmtNode()
}

// IsVariable reports whether name is one of the 26 variable letters
func IsVariable(name byte) bool {
	return name >= 'A' && name <= 'Z'
}

// VariableIndex maps a variable letter to its slot 0..25
func VariableIndex(name byte) int {
	return int(name - 'A')
}

// BinaryOp enumerates the binary operators
type BinaryOp int

const (
	OpAdd BinaryOp = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
)

// String returns the source symbol of the operator
func (op BinaryOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "="
	case OpNe:
		return "<>"
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	default:
		return fmt.Sprintf("BinaryOp(%d)", int(op))
	}
}

// IsComparison reports whether the operator yields 1 or 0
func (op BinaryOp) IsComparison() bool {
	return op >= OpEq && op <= OpGe
}

// NumberExpr is an integer literal
type NumberExpr struct {
	Value int32
}

// VariableExpr reads one of the variables A..Z
type VariableExpr struct {
	Name byte
}

// ArrayExpr reads an element of a dimensioned array
type ArrayExpr struct {
	Name  byte
	Index Expr
}

// BinaryExpr applies an operator to two operands
type BinaryExpr struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

func (*NumberExpr) exprNode()   {}
func (*VariableExpr) exprNode() {}
func (*ArrayExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}

func (e *NumberExpr) Accept(v Visitor) interface{}   { return v.VisitNumber(e) }
func (e *VariableExpr) Accept(v Visitor) interface{} { return v.VisitVariable(e) }
func (e *ArrayExpr) Accept(v Visitor) interface{}    { return v.VisitArray(e) }
func (e *BinaryExpr) Accept(v Visitor) interface{}   { return v.VisitBinary(e) }

func (e *NumberExpr) String() string   { return Format(e) }
func (e *VariableExpr) String() string { return Format(e) }
func (e *ArrayExpr) String() string    { return Format(e) }
func (e *BinaryExpr) String() string   { return Format(e) }

// PrintItem is one comma separated PRINT operand. Expr is nil for a string
// literal, in which case Text holds the literal without quotes.
type PrintItem struct {
	Text string
	Expr Expr
}

// IsString reports whether the item is a string literal
func (p PrintItem) IsString() bool {
	return p.Expr == nil
}

// PrintStmt writes its items joined by single spaces as one output line
type PrintStmt struct {
	Items []PrintItem
}

// LetStmt assigns a variable
type LetStmt struct {
	Name  byte
	Value Expr
}

// LetArrayStmt assigns an array element
type LetArrayStmt struct {
	Name  byte
	Index Expr
	Value Expr
}

// GotoStmt jumps unconditionally
type GotoStmt struct {
	Target int32
}

// IfStmt jumps when Cond evaluates to a nonzero value
type IfStmt struct {
	Cond   Expr
	Target int32
}

// EndStmt stops the program
type EndStmt struct{}

// DimStmt allocates a zero filled array, replacing any previous one.
// A negative Size is accepted here and rejected at run time.
type DimStmt struct {
	Name byte
	Size int32
}

func (*PrintStmt) stmtNode()    {}
func (*LetStmt) stmtNode()      {}
func (*LetArrayStmt) stmtNode() {}
func (*GotoStmt) stmtNode()     {}
func (*IfStmt) stmtNode()       {}
func (*EndStmt) stmtNode()      {}
func (*DimStmt) stmtNode()      {}

func (s *PrintStmt) Accept(v Visitor) interface{}    { return v.VisitPrint(s) }
func (s *LetStmt) Accept(v Visitor) interface{}      { return v.VisitLet(s) }
func (s *LetArrayStmt) Accept(v Visitor) interface{} { return v.VisitLetArray(s) }
func (s *GotoStmt) Accept(v Visitor) interface{}     { return v.VisitGoto(s) }
func (s *IfStmt) Accept(v Visitor) interface{}       { return v.VisitIf(s) }
func (s *EndStmt) Accept(v Visitor) interface{}      { return v.VisitEnd(s) }
func (s *DimStmt) Accept(v Visitor) interface{}      { return v.VisitDim(s) }

func (s *PrintStmt) String() string    { return Format(s) }
func (s *LetStmt) String() string      { return Format(s) }
func (s *LetArrayStmt) String() string { return Format(s) }
func (s *GotoStmt) String() string     { return Format(s) }
func (s *IfStmt) String() string       { return Format(s) }
func (s *EndStmt) String() string      { return Format(s) }
func (s *DimStmt) String() string      { return Format(s) }

// Line is one numbered statement
type Line struct {
	Number int32
	Stmt   Stmt
}

// String renders the line as source text
func (l Line) String() string {
	return FormatLine(l)
}

// Program is an ordered sequence of lines, normally ascending by number
type Program []Line

// Index returns the position of the first line numbered n, or -1
func (p Program) Index(n int32) int {
	for i := range p {
		if p[i].Number == n {
			return i
		}
	}
	return -1
}

// Source renders the program one line per row, in program order
func (p Program) Source() string {
	return FormatProgram(p)
}
