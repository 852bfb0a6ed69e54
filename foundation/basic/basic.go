// File: basic.go
// Title: tinyBASIC Engine and Core Operations
// Description: High-level API over the tokenizer, parser and interpreter:
//              Tokenize, Parse and Run, plus an Engine that tags each run
//              with a run ID for logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial engine implementation
// - 2026-10-15 v0.2.0: tinyBASIC core operations

// Package basic is the entry point to the tinyBASIC core. Data flows one
// way: Tokenize, then Parse, then Run.
//
//	program, err := basic.Parse("10 PRINT \"HI\"\n20 END")
//	if err != nil {
//		// *parser.ParseError
//	}
//	err = basic.Run(ctx, program, basic.WriterSink(os.Stdout))
//	// *executor.RuntimeError or ctx.Err()
package basic

import (
	"context"
	"io"

	"github.com/google/uuid"

	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
	tbexecutor "github.com/msto63/tinybasic/foundation/basic/executor"
	tbparser "github.com/msto63/tinybasic/foundation/basic/parser"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

// Sink receives program output one line at a time
type Sink = tbexecutor.Sink

// Recorder collects program output in memory
type Recorder = tbexecutor.Recorder

// WriterSink adapts an io.Writer to a Sink
func WriterSink(w io.Writer) Sink {
	return tbexecutor.WriterSink(w)
}

// Options configures an Engine
type Options struct {
	// Logger for parser and executor (optional, defaults to the default logger)
	Logger *tblog.Logger
}

// Engine parses and runs programs. Each Run gets its own interpreter, so an
// Engine can serve concurrent runs.
type Engine struct {
	logger *tblog.Logger
}

// NewEngine creates an engine
func NewEngine(opts Options) *Engine {
	if opts.Logger == nil {
		opts.Logger = tblog.GetDefault()
	}
	return &Engine{logger: opts.Logger}
}

// Tokenize converts text into tokens. Errors are *parser.LexError.
func (e *Engine) Tokenize(text string) ([]tbparser.Token, error) {
	return tbparser.Tokenize(text)
}

// Parse converts text into a program sorted by line number. Errors are
// *parser.ParseError.
func (e *Engine) Parse(text string) (tbast.Program, error) {
	return tbparser.New(tbparser.Options{Logger: e.logger}).Parse(text)
}

// Run executes program with fresh state, sending PRINT output to sink.
// Errors are *executor.RuntimeError or the context error.
func (e *Engine) Run(ctx context.Context, program tbast.Program, sink Sink) error {
	_, err := e.RunWithID(ctx, uuid.New().String(), program, sink)
	return err
}

// RunWithID is Run with a caller supplied run ID. It returns the
// interpreter so callers can inspect the final state.
func (e *Engine) RunWithID(ctx context.Context, runID string, program tbast.Program, sink Sink) (*tbexecutor.Interpreter, error) {
	in := tbexecutor.New(program, tbexecutor.Options{
		Logger: e.logger,
		Sink:   sink,
		RunID:  runID,
	})
	return in, in.Run(ctx)
}

var defaultEngine = NewEngine(Options{})

// Tokenize converts text into tokens using the default engine
func Tokenize(text string) ([]tbparser.Token, error) {
	return defaultEngine.Tokenize(text)
}

// Parse converts text into a program using the default engine
func Parse(text string) (tbast.Program, error) {
	return defaultEngine.Parse(text)
}

// Run executes program using the default engine
func Run(ctx context.Context, program tbast.Program, sink Sink) error {
	return defaultEngine.Run(ctx, program, sink)
}
