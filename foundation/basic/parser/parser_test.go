// File: parser_test.go
// Title: tinyBASIC Parser Tests
// Description: Tests for statement grammar, precedence, line ordering and
//              syntax errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial parser tests
// - 2026-10-15 v0.2.0: tinyBASIC grammar

package parser

import (
	"errors"
	"io"
	"strings"
	"testing"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
	tberror "github.com/msto63/tinybasic/foundation/core/error"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

func newTestParser() *Parser {
	return New(Options{Logger: tblog.NewWithConfig(tblog.Config{Output: io.Discard})})
}

func mustParse(t *testing.T, input string) tbast.Program {
	t.Helper()
	program, err := newTestParser().Parse(input)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", input, err)
	}
	return program
}

func TestParse_Statements(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`10 PRINT "A", 1+2, "B"`, `10 PRINT "A", (1 + 2), "B"`},
		{`10 PRINT`, `10 PRINT ""`},
		{`10 PRINT ,"x",`, `10 PRINT "x"`},
		{`10 PRINT -A`, `10 PRINT (0 - A)`},
		{`10 LET A = 1`, `10 LET A = 1`},
		{`10 let b = a`, `10 LET B = A`},
		{`10 LET A(I+1) = 7`, `10 LET A((I + 1)) = 7`},
		{`10 GOTO 100`, `10 GOTO 100`},
		{`10 IF A < 3 THEN 20`, `10 IF (A < 3) THEN 20`},
		{`10 IF A THEN 20`, `10 IF A THEN 20`},
		{`10 END`, `10 END`},
		{`10 DIM A(5)`, `10 DIM A(5)`},
		{`10 DIM A(-3)`, `10 DIM A(-3)`},
		{`10 PRINT B(2)`, `10 PRINT B(2)`},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			program := mustParse(t, tt.input)
			if len(program) != 1 {
				t.Fatalf("got %d lines, want 1", len(program))
			}
			if got := program[0].String(); got != tt.want {
				t.Errorf("rendered %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParse_Precedence(t *testing.T) {
	tests := []struct {
		expr string
		want string
	}{
		{"1+2*3", "(1 + (2 * 3))"},
		{"(1+2)*3", "((1 + 2) * 3)"},
		{"1-2-3", "((1 - 2) - 3)"},
		{"8/4/2", "((8 / 4) / 2)"},
		{"--1", "(0 - (0 - 1))"},
		{"-2*3", "((0 - 2) * 3)"},
		{"A+1 >= B*2", "((A + 1) >= (B * 2))"},
		{"A <> B", "(A <> B)"},
		{"A = B", "(A = B)"},
		{"A(B(1))", "A(B(1))"},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			program := mustParse(t, "10 LET X = "+tt.expr)
			let := program[0].Stmt.(*tbast.LetStmt)
			if got := let.Value.String(); got != tt.want {
				t.Errorf("parsed %q as %q, want %q", tt.expr, got, tt.want)
			}
		})
	}
}

func TestParse_SortsStably(t *testing.T) {
	program := mustParse(t, "30 END\n10 PRINT \"first\"\n20 GOTO 30\n10 PRINT \"second\"")

	numbers := make([]int32, len(program))
	for i, line := range program {
		numbers[i] = line.Number
	}
	want := []int32{10, 10, 20, 30}
	for i := range want {
		if numbers[i] != want[i] {
			t.Fatalf("line order %v, want %v", numbers, want)
		}
	}
	if got := program[0].Stmt.String(); got != `PRINT "first"` {
		t.Errorf("first duplicate = %q", got)
	}
	if got := program[1].Stmt.String(); got != `PRINT "second"` {
		t.Errorf("second duplicate = %q", got)
	}
}

func TestParse_StopsWithoutLineNumber(t *testing.T) {
	for _, input := range []string{"", "PRINT 1", "LET A = 1", `"text"`} {
		program, err := newTestParser().Parse(input)
		if err != nil {
			t.Errorf("Parse(%q) error: %v", input, err)
		}
		if len(program) != 0 {
			t.Errorf("Parse(%q) = %v, want empty program", input, program)
		}
	}
}

func TestParse_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  Kind
		text  string
	}{
		{"missing statement", "10", KindUnexpectedEnd, "Unexpected end of input"},
		{"number is not a statement", "10 20", KindUnexpectedToken, "Expected statement, got NUMBER(20)"},
		{"let without equals", "10 LET A 1", KindUnexpectedToken, "Expected =, got NUMBER(1)"},
		{"let without variable", "10 LET = 1", KindUnexpectedToken, "Expected variable, got EQUALS(=)"},
		{"unclosed index", "10 LET A(1 2) = 3", KindUnexpectedToken, "Expected ), got NUMBER(2)"},
		{"missing operand", "10 LET A = 1 +", KindUnexpectedEnd, "Unexpected end of input"},
		{"unmatched paren", "10 PRINT (1", KindUnexpectedEnd, "Unexpected end of input"},
		{"if without then", "10 IF A 20", KindUnexpectedToken, "Expected THEN, got NUMBER(20)"},
		{"goto without target", "10 GOTO A", KindUnexpectedToken, "Expected line number, got IDENTIFIER(A)"},
		{"dim without size", "10 DIM A(B)", KindUnexpectedToken, "Expected array size, got IDENTIFIER(B)"},
		{"chained comparison", "10 IF A < B < C THEN 10", KindUnexpectedToken, "Expected THEN, got LESS(<)"},
		{"trailing tokens", "10 LET A = 1 )", KindUnexpectedToken, "Expected end of statement, got RIGHT_PAREN())"},
		{"trailing after goto", "10 GOTO 20 END", KindUnexpectedToken, "Expected end of statement, got END"},
		{"huge line number", "99999999999 END", KindInvalidLineNumber, "Invalid line number 99999999999"},
		{"huge jump target", "10 GOTO 99999999999", KindInvalidLineNumber, "Invalid line number 99999999999"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestParser().Parse(tt.input)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error = %v, want *ParseError", tt.input, err)
			}
			if pe.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", pe.Kind, tt.kind)
			}
			if !strings.HasPrefix(pe.Error(), tt.text) {
				t.Errorf("Error() = %q, want prefix %q", pe.Error(), tt.text)
			}
			if pe.Code() != tberror.CodeSyntax {
				t.Errorf("Code() = %v, want SYNTAX", pe.Code())
			}
		})
	}
}

func TestParse_LexicalErrorIsWrapped(t *testing.T) {
	_, err := newTestParser().Parse("10 PRINT @")
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Kind != KindLexical {
		t.Fatalf("error = %v, want lexical ParseError", err)
	}
	var lexErr *LexError
	if !errors.As(err, &lexErr) {
		t.Fatal("LexError not reachable through errors.As")
	}
	if lexErr.Position != 10 {
		t.Errorf("Position = %d, want 10", lexErr.Position)
	}
	if pe.Error() != lexErr.Error() {
		t.Errorf("Error() = %q, want %q", pe.Error(), lexErr.Error())
	}
	if pe.Code() != tberror.CodeLexical {
		t.Errorf("Code() = %v, want LEXICAL", pe.Code())
	}
}

func TestParse_ErrorPosition(t *testing.T) {
	_, err := newTestParser().Parse("10 END\n20 LET A 5")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal(err)
	}
	if pe.Token.Line != 2 || pe.Token.Column != 10 {
		t.Errorf("error at %d:%d, want 2:10", pe.Token.Line, pe.Token.Column)
	}
	if !strings.HasSuffix(pe.Error(), "at line 2, column 10") {
		t.Errorf("Error() = %q", pe.Error())
	}
}

func TestParse_RoundTrip(t *testing.T) {
	source := `
10 DIM A(10)
20 LET I = 0
30 LET A(I) = I * I - -1
40 LET I = I + 1
50 IF I < 10 THEN 30
60 PRINT "done", A(9) / 2, I <> 10
70 END`
	first := mustParse(t, source)
	second := mustParse(t, first.Source())
	if first.Source() != second.Source() {
		t.Errorf("round trip changed program:\n%s\nvs\n%s", first.Source(), second.Source())
	}
}

func TestParser_Reusable(t *testing.T) {
	p := newTestParser()
	if _, err := p.Parse("10 LET"); err == nil {
		t.Fatal("expected error")
	}
	program, err := p.Parse("10 END")
	if err != nil || len(program) != 1 {
		t.Errorf("second Parse = %v, %v", program, err)
	}
}

func TestKind_String(t *testing.T) {
	if KindUnexpectedToken.String() != "unexpected token" || Kind(42).String() != "unknown" {
		t.Error("Kind.String mismatch")
	}
}
