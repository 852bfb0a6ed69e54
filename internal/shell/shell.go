// ============================================================================
// tinyBASIC - Line-numbered BASIC interpreter
// ============================================================================
//
// Package:     shell
// Description: Interactive command loop around the tinyBASIC core
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

// Package shell implements the interactive tinyBASIC command loop: numbered
// lines go into the program store, commands list, run, load and save it.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/msto63/tinybasic/foundation/basic"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/internal/storage"
)

const (
	bannerTitle = "Tiny BASIC Interpreter"
	bannerHelp  = "Commands: LOAD, SAVE, RUN, LIST, NEW, DIR, QUIT"
)

// Options configures a Shell
type Options struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer

	// Storage backs LOAD, SAVE and DIR
	Storage storage.Storage
	Logger  *tblog.Logger

	Prompt string
	Banner bool
	Color  bool

	// Interactive enables prompt, banner, colors and Ctrl-C handling for RUN
	Interactive bool
}

// Shell is the interactive command loop
type Shell struct {
	in          io.Reader
	out         io.Writer
	errOut      io.Writer
	storage     storage.Storage
	engine      *basic.Engine
	logger      *tblog.Logger
	program     *Program
	styles      Styles
	prompt      string
	banner      bool
	interactive bool
}

// New creates a shell with an empty program
func New(opts Options) *Shell {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Err == nil {
		opts.Err = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = tblog.GetDefault()
	}
	if opts.Storage == nil {
		opts.Storage = storage.NewMemoryStorage()
	}
	if opts.Prompt == "" {
		opts.Prompt = "> "
	}

	styles := PlainStyles()
	if opts.Color && opts.Interactive {
		styles = ColorStyles()
	}

	return &Shell{
		in:          opts.In,
		out:         opts.Out,
		errOut:      opts.Err,
		storage:     opts.Storage,
		engine:      basic.NewEngine(basic.Options{Logger: opts.Logger}),
		logger:      opts.Logger.WithName("shell"),
		program:     NewProgram(),
		styles:      styles,
		prompt:      opts.Prompt,
		banner:      opts.Banner,
		interactive: opts.Interactive,
	}
}

// Program returns the shell's program store
func (s *Shell) Program() *Program {
	return s.program
}

// Run reads commands until end of input, QUIT or ctx is done
func (s *Shell) Run(ctx context.Context) error {
	if s.interactive && s.banner {
		fmt.Fprintln(s.out, s.styles.Title.Render(bannerTitle))
		fmt.Fprintln(s.out, s.styles.Help.Render(bannerHelp))
		fmt.Fprintln(s.out)
	}

	scanner := bufio.NewScanner(s.in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.interactive {
			fmt.Fprint(s.out, s.styles.Prompt.Render(s.prompt))
		}
		if !scanner.Scan() {
			break
		}
		if s.Execute(ctx, scanner.Text()) {
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		s.logger.ErrorWithErr("reading input failed", err)
		return err
	}
	return nil
}

// Execute handles one input line and reports whether the shell should stop
func (s *Shell) Execute(ctx context.Context, input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	upper := strings.ToUpper(input)

	switch upper {
	case "QUIT", "BYE", "EXIT":
		fmt.Fprintln(s.out, "Goodbye!")
		return true
	case "NEW":
		s.program.Clear()
		fmt.Fprintln(s.out, s.styles.Info.Render("Program cleared."))
	case "LIST":
		s.list()
	case "RUN":
		s.run(ctx)
	case "DIR":
		s.dir(ctx)
	case "LOAD", "SAVE":
		s.errorf("Usage: %s name", upper)
	default:
		switch {
		case strings.HasPrefix(upper, "LOAD "):
			s.load(ctx, storage.CleanName(input[len("LOAD "):]))
		case strings.HasPrefix(upper, "SAVE "):
			s.save(ctx, storage.CleanName(input[len("SAVE "):]))
		default:
			s.enter(input)
		}
	}
	return false
}

func (s *Shell) list() {
	if s.program.Len() == 0 {
		fmt.Fprintln(s.out, s.styles.Info.Render("(No program)"))
		return
	}
	fmt.Fprint(s.out, s.program.Source())
}

func (s *Shell) run(ctx context.Context) {
	if s.program.Len() == 0 {
		fmt.Fprintln(s.out, s.styles.Info.Render("(No program to run)"))
		return
	}

	program, err := s.engine.Parse(s.program.Source())
	if err != nil {
		s.errorf("Parse error: %v", err)
		return
	}

	if s.interactive {
		var stop context.CancelFunc
		ctx, stop = signal.NotifyContext(ctx, os.Interrupt)
		defer stop()
	}

	err = s.engine.Run(ctx, program, basic.WriterSink(s.out))
	switch {
	case err == nil:
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		s.errorf("Run interrupted")
	default:
		s.errorf("Runtime error: %v", err)
	}
}

func (s *Shell) load(ctx context.Context, name string) {
	source, err := s.storage.Load(ctx, name)
	if err != nil {
		s.logger.Debug("load failed", tblog.Fields{"name": name, "error": err.Error()})
		s.errorf("Error loading file: %v", err)
		return
	}

	program, err := s.engine.Parse(source)
	if err != nil {
		s.errorf("Parse error: %v", err)
		return
	}

	s.program.Replace(program)
	fmt.Fprintf(s.out, "Loaded %d lines from %s\n", len(program), name)
}

func (s *Shell) save(ctx context.Context, name string) {
	if err := s.storage.Save(ctx, name, s.program.Source()); err != nil {
		s.logger.Debug("save failed", tblog.Fields{"name": name, "error": err.Error()})
		s.errorf("Error saving file: %v", err)
		return
	}
	fmt.Fprintf(s.out, "Saved %d lines to %s\n", s.program.Len(), name)
}

func (s *Shell) dir(ctx context.Context) {
	names, err := s.storage.List(ctx)
	if err != nil {
		s.errorf("Error listing programs: %v", err)
		return
	}
	if len(names) == 0 {
		fmt.Fprintln(s.out, s.styles.Info.Render("(No saved programs)"))
		return
	}
	for _, name := range names {
		fmt.Fprintln(s.out, name)
	}
}

// enter stores the numbered lines of input. Text without a line number
// parses to an empty program and changes nothing.
func (s *Shell) enter(input string) {
	program, err := s.engine.Parse(input)
	if err != nil {
		s.errorf("Parse error: %v", err)
		return
	}
	s.program.Set(program...)
}

func (s *Shell) errorf(format string, args ...interface{}) {
	fmt.Fprintln(s.errOut, s.styles.Error.Render(fmt.Sprintf(format, args...)))
}
