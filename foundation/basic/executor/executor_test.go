// File: executor_test.go
// Title: tinyBASIC Interpreter Tests
// Description: Tests for expression evaluation, statements, control flow,
//              runtime errors and run state.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor tests
// - 2026-10-15 v0.2.0: tinyBASIC interpreter

package executor

import (
	"context"
	"errors"
	"io"
	"math"
	"strings"
	"testing"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
	tbparser "github.com/msto63/tinybasic/foundation/basic/parser"
	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

var quietLogger = tblog.NewWithConfig(tblog.Config{Level: tblog.LevelTrace, Output: io.Discard})

func parse(t *testing.T, source string) tbast.Program {
	t.Helper()
	program, err := tbparser.New(tbparser.Options{Logger: quietLogger}).Parse(source)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return program
}

func run(t *testing.T, source string) (*Interpreter, *Recorder, error) {
	t.Helper()
	rec := &Recorder{}
	in := New(parse(t, source), Options{Logger: quietLogger, Sink: rec})
	return in, rec, in.Run(context.Background())
}

func runtimeErr(t *testing.T, err error) *RuntimeError {
	t.Helper()
	var rt *RuntimeError
	if !errors.As(err, &rt) {
		t.Fatalf("error = %v, want *RuntimeError", err)
	}
	return rt
}

func TestVariablesStartAtZero(t *testing.T) {
	in := New(nil, Options{Logger: quietLogger})
	for c := byte('A'); c <= 'Z'; c++ {
		v, err := in.Variable(c)
		if err != nil || v != 0 {
			t.Errorf("Variable(%c) = %d, %v; want 0", c, v, err)
		}
	}
	if _, err := in.Variable('a'); runtimeErr(t, err).Kind != KindUndefinedVariable {
		t.Errorf("Variable('a') should be undefined")
	}
}

func TestLoopRunsToCompletion(t *testing.T) {
	_, rec, err := run(t, `
10 LET A = 1
20 LET A = A + 1
30 IF A < 3 THEN 20
40 PRINT A`)
	if err != nil {
		t.Fatal(err)
	}
	if last, ok := rec.Last(); !ok || last != "3" {
		t.Errorf("last line = %q, want 3", last)
	}
}

func TestPrintJoinsItems(t *testing.T) {
	_, rec, err := run(t, `10 PRINT "A", 1+2, "B"`)
	if err != nil {
		t.Fatal(err)
	}
	lines := rec.Lines()
	if len(lines) != 1 || lines[0] != "A 3 B" {
		t.Errorf("output = %q, want [\"A 3 B\"]", lines)
	}
}

func TestPrintFormatting(t *testing.T) {
	_, rec, err := run(t, `
10 PRINT -5, 0, 007
20 PRINT ""
30 PRINT`)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"-5 0 7", "", ""}
	got := rec.Lines()
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want int32
	}{
		{"1 + 2 * 3", 7},
		{"7 / 2", 3},
		{"-7 / 2", -3},
		{"7 / -2", -3},
		{"2147483647 + 1", math.MinInt32},
		{"0 - 2147483647 - 1", math.MinInt32},
		{"(0 - 2147483647 - 1) / -1", math.MinInt32},
		{"65536 * 65536", 0},
		{"3 = 3", 1},
		{"3 <> 3", 0},
		{"2 < 3", 1},
		{"3 <= 3", 1},
		{"2 > 3", 0},
		{"3 >= 4", 0},
		{"1 + (2 < 3)", 2},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			program := parse(t, "10 LET X = "+tt.expr)
			in := New(program, Options{Logger: quietLogger})
			got, err := in.Eval(program[0].Stmt.(*tbast.LetStmt).Value)
			if err != nil {
				t.Fatalf("Eval error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Eval(%s) = %d, want %d", tt.expr, got, tt.want)
			}
		})
	}
}

func TestArrays(t *testing.T) {
	in, rec, err := run(t, `
10 DIM A(5)
20 LET A(4) = 1
30 PRINT A(4), A(0)`)
	if err != nil {
		t.Fatal(err)
	}
	if last, _ := rec.Last(); last != "1 0" {
		t.Errorf("output = %q, want \"1 0\"", last)
	}
	arr, ok := in.Array('A')
	if !ok || len(arr) != 5 || arr[4] != 1 {
		t.Errorf("Array(A) = %v, %v", arr, ok)
	}
}

func TestDimReplacesArray(t *testing.T) {
	in, _, err := run(t, `
10 DIM A(3)
20 LET A(2) = 9
30 DIM A(4)`)
	if err != nil {
		t.Fatal(err)
	}
	arr, _ := in.Array('A')
	if len(arr) != 4 || arr[2] != 0 {
		t.Errorf("re-DIM kept old contents: %v", arr)
	}
}

func TestRuntimeErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		kind    Kind
		message string
		line    int32
	}{
		{"store past end", "10 DIM A(5)\n20 LET A(5) = 1", KindIndexOutOfBounds, "Index 5 out of bounds for array A (size 5)", 20},
		{"negative index", "10 DIM A(5)\n20 PRINT A(-1)", KindIndexOutOfBounds, "Index -1 out of bounds for array A (size 5)", 20},
		{"undimensioned read", "10 PRINT B(0)", KindUndefinedArray, "Array B not dimensioned", 10},
		{"undimensioned store", "10 LET B(0) = 1", KindUndefinedArray, "Array B not dimensioned", 10},
		{"negative dim", "10 DIM C(-2)", KindIndexOutOfBounds, "Index -2 out of bounds for array C (size 0)", 10},
		{"division by zero", "10 PRINT 1/0", KindDivisionByZero, "Division by zero", 10},
		{"missing goto target", "10 GOTO 99\n20 PRINT 1", KindInvalidLineNumber, "Invalid line number: 99", 10},
		{"missing if target", "10 IF 1 THEN 5", KindInvalidLineNumber, "Invalid line number: 5", 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, _, err := run(t, tt.source)
			rt := runtimeErr(t, err)
			if rt.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", rt.Kind, tt.kind)
			}
			if rt.Error() != tt.message {
				t.Errorf("Error() = %q, want %q", rt.Error(), tt.message)
			}
			if rt.Line != tt.line {
				t.Errorf("Line = %d, want %d", rt.Line, tt.line)
			}
			if in.State() != StateFailed {
				t.Errorf("State = %v, want failed", in.State())
			}
			if !tberror.HasCode(err, tberror.CodeRuntime) {
				t.Error("runtime error should carry the RUNTIME code")
			}
		})
	}
}

func TestDivisionByZeroPrintsNothing(t *testing.T) {
	_, rec, err := run(t, "10 PRINT \"x\", 1/0")
	if runtimeErr(t, err).Kind != KindDivisionByZero {
		t.Fatalf("err = %v", err)
	}
	if len(rec.Lines()) != 0 {
		t.Errorf("partial output emitted: %q", rec.Lines())
	}
}

func TestInvalidJumpStopsBeforeOtherLines(t *testing.T) {
	in, rec, err := run(t, "10 GOTO 99\n20 PRINT 1")
	runtimeErr(t, err)
	if len(rec.Lines()) != 0 || in.Steps() != 1 {
		t.Errorf("executed %d steps with output %q", in.Steps(), rec.Lines())
	}
}

func TestStateIsKeptOnFailure(t *testing.T) {
	in, _, err := run(t, "10 LET A = 5\n20 LET B = A / 0\n30 LET A = 6")
	runtimeErr(t, err)
	if a, _ := in.Variable('A'); a != 5 {
		t.Errorf("A = %d, want 5", a)
	}
}

func TestEndStopsRun(t *testing.T) {
	in, rec, err := run(t, "10 PRINT 1\n20 END\n30 PRINT 2")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(rec.Lines(), ",") != "1" {
		t.Errorf("output = %q", rec.Lines())
	}
	if in.State() != StateDone {
		t.Errorf("State = %v, want done", in.State())
	}
	if err := in.Step(context.Background()); err != nil || in.Steps() != 2 {
		t.Errorf("Step after termination executed: steps=%d err=%v", in.Steps(), err)
	}
}

func TestJumpGoesToFirstDuplicate(t *testing.T) {
	_, rec, err := run(t, `
10 GOTO 30
20 END
30 PRINT "first"
30 PRINT "second"`)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Join(rec.Lines(), ",") != "first,second" {
		t.Errorf("output = %q", rec.Lines())
	}
}

func TestFallThroughFollowsProgramOrder(t *testing.T) {
	program := tbast.Program{
		{Number: 30, Stmt: &tbast.PrintStmt{Items: []tbast.PrintItem{{Text: "thirty"}}}},
		{Number: 10, Stmt: &tbast.PrintStmt{Items: []tbast.PrintItem{{Text: "ten"}}}},
	}
	rec := &Recorder{}
	if err := New(program, Options{Logger: quietLogger, Sink: rec}).Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Join(rec.Lines(), ",") != "thirty,ten" {
		t.Errorf("output = %q", rec.Lines())
	}
}

func TestRunStartsFresh(t *testing.T) {
	in, rec, err := run(t, "10 LET A = A + 1\n20 DIM B(1)\n30 LET B(0) = B(0) + A\n40 PRINT A, B(0)")
	if err != nil {
		t.Fatal(err)
	}
	if err := in.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if strings.Join(rec.Lines(), ",") != "1 1,1 1" {
		t.Errorf("second run reused state: %q", rec.Lines())
	}
}

func TestEmptyProgram(t *testing.T) {
	in := New(nil, Options{Logger: quietLogger})
	if err := in.Run(context.Background()); err != nil {
		t.Fatal(err)
	}
	if in.State() != StateDone {
		t.Errorf("State = %v", in.State())
	}
}

func TestRunHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := New(parse(t, "10 GOTO 10"), Options{Logger: quietLogger})
	err := in.Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if in.State() != StateFailed {
		t.Errorf("State = %v", in.State())
	}
}

type countdownSink struct {
	cancel context.CancelFunc
	left   int
}

func (s *countdownSink) PrintLine(string) error {
	s.left--
	if s.left == 0 {
		s.cancel()
	}
	return nil
}

func TestRunCancelsInfiniteLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sink := &countdownSink{cancel: cancel, left: 3}
	in := New(parse(t, "10 PRINT 1\n20 GOTO 10"), Options{Logger: quietLogger, Sink: sink})
	if err := in.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if in.Steps() != 5 {
		t.Errorf("Steps = %d, want 5", in.Steps())
	}
}

type failingSink struct{}

func (failingSink) PrintLine(string) error { return errors.New("closed pipe") }

func TestSinkFailureAbortsRun(t *testing.T) {
	in := New(parse(t, "10 PRINT 1\n20 LET A = 1"), Options{Logger: quietLogger, Sink: failingSink{}})
	err := in.Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "closed pipe") {
		t.Fatalf("err = %v", err)
	}
	if a, _ := in.Variable('A'); a != 0 {
		t.Error("run continued after output failure")
	}
}

func TestWriterSink(t *testing.T) {
	var b strings.Builder
	sink := WriterSink(&b)
	_ = sink.PrintLine("A 3 B")
	_ = sink.PrintLine("")
	if b.String() != "A 3 B\n\n" {
		t.Errorf("written %q", b.String())
	}
}

func TestRecorder(t *testing.T) {
	rec := &Recorder{}
	if _, ok := rec.Last(); ok {
		t.Error("empty recorder has a last line")
	}
	_ = rec.PrintLine("x")
	rec.Reset()
	if len(rec.Lines()) != 0 {
		t.Error("Reset kept lines")
	}
}
