// File: executor.go
// Title: tinyBASIC Interpreter
// Description: Executes programs statement by statement, evaluating
//              expressions over 32-bit integers and resolving jumps by
//              line number.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor implementation
// - 2026-10-15 v0.2.0: tinyBASIC interpreter with cancellable runs

package executor

import (
	"context"
	"errors"
	"strconv"
	"strings"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// State is the run state of an Interpreter
type State int

const (
	// StateRunning means the next Step executes the line at the cursor
	StateRunning State = iota
	// StateDone means END executed or the cursor left the program
	StateDone
	// StateFailed means a statement failed or the run was cancelled
	StateFailed
)

// String returns the name of the state
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Options configures an Interpreter
type Options struct {
	Logger *tblog.Logger
	Sink   Sink
	RunID  string
}

// Interpreter executes one program. It is not safe for concurrent use;
// concurrent runs need separate interpreters.
type Interpreter struct {
	program tbast.Program
	lines   map[int32]int // first index of each line number

	vars   [26]int32
	arrays map[byte][]int32
	cursor int
	state  State
	steps  int

	sink   Sink
	logger *tblog.Logger
}

// New creates an interpreter for program, ready to run from its first line
func New(program tbast.Program, opts Options) *Interpreter {
	if opts.Logger == nil {
		opts.Logger = tblog.GetDefault()
	}
	if opts.Sink == nil {
		opts.Sink = &Recorder{}
	}
	logger := opts.Logger.WithField("component", "basic-executor")
	if opts.RunID != "" {
		logger = logger.WithRunID(opts.RunID)
	}

	lines := make(map[int32]int, len(program))
	for i, line := range program {
		if _, seen := lines[line.Number]; !seen {
			lines[line.Number] = i
		}
	}

	in := &Interpreter{
		program: program,
		lines:   lines,
		sink:    opts.Sink,
		logger:  logger,
	}
	in.reset()
	return in
}

func (in *Interpreter) reset() {
	in.vars = [26]int32{}
	in.arrays = make(map[byte][]int32)
	in.cursor = 0
	in.steps = 0
	in.state = StateRunning
}

// State returns the current run state
func (in *Interpreter) State() State {
	return in.state
}

// Cursor returns the program index of the next line to execute
func (in *Interpreter) Cursor() int {
	return in.cursor
}

// Steps returns the number of statements executed in the current run
func (in *Interpreter) Steps() int {
	return in.steps
}

// Variable returns the value of a variable letter
func (in *Interpreter) Variable(name byte) (int32, error) {
	if !tbast.IsVariable(name) {
		return 0, &RuntimeError{Kind: KindUndefinedVariable, Name: name}
	}
	return in.vars[tbast.VariableIndex(name)], nil
}

// Array returns a copy of a dimensioned array
func (in *Interpreter) Array(name byte) ([]int32, bool) {
	arr, ok := in.arrays[name]
	if !ok {
		return nil, false
	}
	return append([]int32(nil), arr...), true
}

// Run executes the program from its first line with fresh variables and
// arrays. It returns a *RuntimeError when a statement fails, or the context
// error when ctx is done before a statement starts.
func (in *Interpreter) Run(ctx context.Context) error {
	in.reset()

	timer := in.logger.StartTimer("run").WithField("lines", len(in.program))
	for in.state == StateRunning {
		if err := in.Step(ctx); err != nil {
			timer.WithField("steps", in.steps).WithField("failed", true).Stop()
			return err
		}
	}
	timer.WithField("steps", in.steps).Stop()
	return nil
}

// Step executes the line at the cursor and moves the cursor. It does
// nothing once the run has terminated.
func (in *Interpreter) Step(ctx context.Context) error {
	if in.state != StateRunning {
		return nil
	}
	if in.cursor >= len(in.program) {
		in.state = StateDone
		return nil
	}
	if err := ctx.Err(); err != nil {
		in.state = StateFailed
		return err
	}

	line := in.program[in.cursor]
	if in.logger.IsLevelEnabled(tblog.LevelTrace) {
		in.logger.Trace("executing line", tblog.Fields{"line": line.Number, "statement": line.Stmt.String()})
	}
	in.steps++

	target, jump, err := in.Execute(line.Stmt)
	switch {
	case err != nil:
	case jump:
		idx, ok := in.lines[target]
		if !ok {
			err = &RuntimeError{Kind: KindInvalidLineNumber, Target: target}
			break
		}
		in.cursor = idx
	default:
		in.cursor++
	}

	if err != nil {
		var rt *RuntimeError
		if errors.As(err, &rt) {
			rt.Line = line.Number
		}
		in.logger.Debug("run failed", tblog.Fields{"line": line.Number, "error": err.Error()})
		in.state = StateFailed
		return err
	}
	if in.state == StateRunning && in.cursor >= len(in.program) {
		in.state = StateDone
	}
	return nil
}

// Execute runs a single statement against the current state. It reports a
// jump target when the statement transfers control.
func (in *Interpreter) Execute(stmt tbast.Stmt) (target int32, jump bool, err error) {
	switch s := stmt.(type) {
	case *tbast.PrintStmt:
		return 0, false, in.print(s)

	case *tbast.LetStmt:
		value, err := in.Eval(s.Value)
		if err != nil {
			return 0, false, err
		}
		if !tbast.IsVariable(s.Name) {
			return 0, false, &RuntimeError{Kind: KindUndefinedVariable, Name: s.Name}
		}
		in.vars[tbast.VariableIndex(s.Name)] = value
		return 0, false, nil

	case *tbast.LetArrayStmt:
		index, err := in.Eval(s.Index)
		if err != nil {
			return 0, false, err
		}
		value, err := in.Eval(s.Value)
		if err != nil {
			return 0, false, err
		}
		arr, err := in.element(s.Name, index)
		if err != nil {
			return 0, false, err
		}
		arr[index] = value
		return 0, false, nil

	case *tbast.GotoStmt:
		return s.Target, true, nil

	case *tbast.IfStmt:
		cond, err := in.Eval(s.Cond)
		if err != nil {
			return 0, false, err
		}
		return s.Target, cond != 0, nil

	case *tbast.EndStmt:
		in.state = StateDone
		return 0, false, nil

	case *tbast.DimStmt:
		if s.Size < 0 {
			return 0, false, &RuntimeError{Kind: KindIndexOutOfBounds, Name: s.Name, Index: s.Size, Size: 0}
		}
		in.arrays[s.Name] = make([]int32, s.Size)
		return 0, false, nil

	default:
		return 0, false, tberror.Newf("unsupported statement %T", stmt).WithCode(tberror.CodeInternal)
	}
}

func (in *Interpreter) print(s *tbast.PrintStmt) error {
	parts := make([]string, 0, len(s.Items))
	for _, item := range s.Items {
		if item.IsString() {
			parts = append(parts, item.Text)
			continue
		}
		value, err := in.Eval(item.Expr)
		if err != nil {
			return err
		}
		parts = append(parts, strconv.FormatInt(int64(value), 10))
	}
	if err := in.sink.PrintLine(strings.Join(parts, " ")); err != nil {
		return tberror.Wrap(err, "writing program output").WithOperation("PRINT")
	}
	return nil
}

// element returns the array after checking that index is inside it
func (in *Interpreter) element(name byte, index int32) ([]int32, error) {
	arr, ok := in.arrays[name]
	if !ok {
		return nil, &RuntimeError{Kind: KindUndefinedArray, Name: name}
	}
	if index < 0 || int(index) >= len(arr) {
		return nil, &RuntimeError{Kind: KindIndexOutOfBounds, Name: name, Index: index, Size: int32(len(arr))}
	}
	return arr, nil
}

// Eval evaluates an expression. Both operands of a binary expression are
// evaluated, left first.
func (in *Interpreter) Eval(expr tbast.Expr) (int32, error) {
	switch e := expr.(type) {
	case *tbast.NumberExpr:
		return e.Value, nil

	case *tbast.VariableExpr:
		return in.Variable(e.Name)

	case *tbast.ArrayExpr:
		index, err := in.Eval(e.Index)
		if err != nil {
			return 0, err
		}
		arr, err := in.element(e.Name, index)
		if err != nil {
			return 0, err
		}
		return arr[index], nil

	case *tbast.BinaryExpr:
		left, err := in.Eval(e.Left)
		if err != nil {
			return 0, err
		}
		right, err := in.Eval(e.Right)
		if err != nil {
			return 0, err
		}
		return apply(e.Op, left, right)

	default:
		return 0, tberror.Newf("unsupported expression %T", expr).WithCode(tberror.CodeInternal)
	}
}

func apply(op tbast.BinaryOp, l, r int32) (int32, error) {
	switch op {
	case tbast.OpAdd:
		return l + r, nil
	case tbast.OpSub:
		return l - r, nil
	case tbast.OpMul:
		return l * r, nil
	case tbast.OpDiv:
		if r == 0 {
			return 0, &RuntimeError{Kind: KindDivisionByZero}
		}
		return l / r, nil
	case tbast.OpEq:
		return truth(l == r), nil
	case tbast.OpNe:
		return truth(l != r), nil
	case tbast.OpLt:
		return truth(l < r), nil
	case tbast.OpLe:
		return truth(l <= r), nil
	case tbast.OpGt:
		return truth(l > r), nil
	case tbast.OpGe:
		return truth(l >= r), nil
	default:
		return 0, tberror.Newf("unsupported operator %s", op).WithCode(tberror.CodeInternal)
	}
}

func truth(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
