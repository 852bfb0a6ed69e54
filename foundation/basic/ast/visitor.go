// File: visitor.go
// Title: tinyBASIC Syntax Tree Visitors
// Description: Visitor interface, a walking base visitor and a collector
//              for jump targets used by program checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial visitor pattern implementation
// - 2026-10-15 v0.2.0: tinyBASIC node set, jump collector

package ast

import (
	"fmt"
	"sort"
)

// Visitor is implemented by tree traversals
type Visitor interface {
	// Expressions
	VisitNumber(expr *NumberExpr) interface{}
	VisitVariable(expr *VariableExpr) interface{}
	VisitArray(expr *ArrayExpr) interface{}
	VisitBinary(expr *BinaryExpr) interface{}

	// Statements
	VisitPrint(stmt *PrintStmt) interface{}
	VisitLet(stmt *LetStmt) interface{}
	VisitLetArray(stmt *LetArrayStmt) interface{}
	VisitGoto(stmt *GotoStmt) interface{}
	VisitIf(stmt *IfStmt) interface{}
	VisitEnd(stmt *EndStmt) interface{}
	VisitDim(stmt *DimStmt) interface{}
}

// BaseVisitor visits every child node and returns nil.
// Embed it and override the methods of interest; Self must point at the
// embedding visitor so that children are dispatched to the overrides.
type BaseVisitor struct {
	Self Visitor
}

func (bv *BaseVisitor) self() Visitor {
	if bv.Self != nil {
		return bv.Self
	}
	return bv
}

func (bv *BaseVisitor) VisitNumber(expr *NumberExpr) interface{}     { return nil }
func (bv *BaseVisitor) VisitVariable(expr *VariableExpr) interface{} { return nil }

func (bv *BaseVisitor) VisitArray(expr *ArrayExpr) interface{} {
	expr.Index.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitBinary(expr *BinaryExpr) interface{} {
	expr.Left.Accept(bv.self())
	expr.Right.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitPrint(stmt *PrintStmt) interface{} {
	for _, item := range stmt.Items {
		if !item.IsString() {
			item.Expr.Accept(bv.self())
		}
	}
	return nil
}

func (bv *BaseVisitor) VisitLet(stmt *LetStmt) interface{} {
	stmt.Value.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitLetArray(stmt *LetArrayStmt) interface{} {
	stmt.Index.Accept(bv.self())
	stmt.Value.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitGoto(stmt *GotoStmt) interface{} { return nil }

func (bv *BaseVisitor) VisitIf(stmt *IfStmt) interface{} {
	stmt.Cond.Accept(bv.self())
	return nil
}

func (bv *BaseVisitor) VisitEnd(stmt *EndStmt) interface{} { return nil }
func (bv *BaseVisitor) VisitDim(stmt *DimStmt) interface{} { return nil }

// Jump is a GOTO or IF found in a program
type Jump struct {
	From   int32
	Target int32
}

// JumpCollector gathers the jumps of the statements it visits
type JumpCollector struct {
	BaseVisitor
	line  int32
	Jumps []Jump
}

// NewJumpCollector creates an empty collector
func NewJumpCollector() *JumpCollector {
	jc := &JumpCollector{}
	jc.Self = jc
	return jc
}

// VisitLine visits the statement of a line
func (jc *JumpCollector) VisitLine(line Line) {
	jc.line = line.Number
	line.Stmt.Accept(jc)
}

func (jc *JumpCollector) VisitGoto(stmt *GotoStmt) interface{} {
	jc.Jumps = append(jc.Jumps, Jump{From: jc.line, Target: stmt.Target})
	return nil
}

func (jc *JumpCollector) VisitIf(stmt *IfStmt) interface{} {
	jc.Jumps = append(jc.Jumps, Jump{From: jc.line, Target: stmt.Target})
	return nil
}

// MissingTargetError reports a jump to a line that is not in the program
type MissingTargetError struct {
	Jump
}

func (e *MissingTargetError) Error() string {
	return fmt.Sprintf("line %d jumps to missing line %d", e.From, e.Target)
}

// CheckTargets returns one error per jump whose target line does not exist,
// ordered by source line. Running such a program fails only if the jump is
// taken.
func CheckTargets(p Program) []error {
	jc := NewJumpCollector()
	for _, line := range p {
		jc.VisitLine(line)
	}

	present := make(map[int32]bool, len(p))
	for _, line := range p {
		present[line.Number] = true
	}

	var errs []error
	for _, j := range jc.Jumps {
		if !present[j.Target] {
			errs = append(errs, &MissingTargetError{Jump: j})
		}
	}
	sort.SliceStable(errs, func(a, b int) bool {
		return errs[a].(*MissingTargetError).From < errs[b].(*MissingTargetError).From
	})
	return errs
}
