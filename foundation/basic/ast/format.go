// File: format.go
// Title: tinyBASIC Source Renderer
// Description: Renders syntax tree nodes back to source text. Binary
//              expressions are fully parenthesized so the output re-parses
//              to the same tree shape regardless of precedence.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.2.0: Initial renderer

package ast

import (
	"strconv"
	"strings"
)

// Format renders an expression or statement as source text
func Format(n Node) string {
	return n.Accept(renderer{}).(string)
}

// FormatLine renders a numbered line
func FormatLine(l Line) string {
	return strconv.FormatInt(int64(l.Number), 10) + " " + Format(l.Stmt)
}

// FormatProgram renders every line in program order, newline terminated
func FormatProgram(p Program) string {
	var b strings.Builder
	for _, l := range p {
		b.WriteString(FormatLine(l))
		b.WriteByte('\n')
	}
	return b.String()
}

type renderer struct{}

func (r renderer) expr(e Expr) string {
	return e.Accept(r).(string)
}

func (r renderer) VisitNumber(expr *NumberExpr) interface{} {
	return strconv.FormatInt(int64(expr.Value), 10)
}

func (r renderer) VisitVariable(expr *VariableExpr) interface{} {
	return string(rune(expr.Name))
}

func (r renderer) VisitArray(expr *ArrayExpr) interface{} {
	return string(rune(expr.Name)) + "(" + r.expr(expr.Index) + ")"
}

func (r renderer) VisitBinary(expr *BinaryExpr) interface{} {
	return "(" + r.expr(expr.Left) + " " + expr.Op.String() + " " + r.expr(expr.Right) + ")"
}

func (r renderer) VisitPrint(stmt *PrintStmt) interface{} {
	if len(stmt.Items) == 0 {
		return `PRINT ""`
	}
	parts := make([]string, len(stmt.Items))
	for i, item := range stmt.Items {
		if item.IsString() {
			parts[i] = `"` + item.Text + `"`
		} else {
			parts[i] = r.expr(item.Expr)
		}
	}
	return "PRINT " + strings.Join(parts, ", ")
}

func (r renderer) VisitLet(stmt *LetStmt) interface{} {
	return "LET " + string(rune(stmt.Name)) + " = " + r.expr(stmt.Value)
}

func (r renderer) VisitLetArray(stmt *LetArrayStmt) interface{} {
	return "LET " + string(rune(stmt.Name)) + "(" + r.expr(stmt.Index) + ") = " + r.expr(stmt.Value)
}

func (r renderer) VisitGoto(stmt *GotoStmt) interface{} {
	return "GOTO " + strconv.FormatInt(int64(stmt.Target), 10)
}

func (r renderer) VisitIf(stmt *IfStmt) interface{} {
	return "IF " + r.expr(stmt.Cond) + " THEN " + strconv.FormatInt(int64(stmt.Target), 10)
}

func (r renderer) VisitEnd(stmt *EndStmt) interface{} {
	return "END"
}

func (r renderer) VisitDim(stmt *DimStmt) interface{} {
	return "DIM " + string(rune(stmt.Name)) + "(" + strconv.FormatInt(int64(stmt.Size), 10) + ")"
}
