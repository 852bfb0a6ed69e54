package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/tinybasic/foundation/basic"
	tblog "github.com/msto63/tinybasic/foundation/core/log"
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Runs a program",
	Long: `Parses and runs a tinyBASIC program. PRINT output goes to stdout,
parse and runtime errors go to stderr and exit with status 1.`,
	Args: cobra.ExactArgs(1),
	RunE: runProgram,
}

func init() {
	addSourceFlags(runCmd)
	rootCmd.AddCommand(runCmd)
}

func runProgram(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	source, err := loadSource(ctx, args[0])
	if err != nil {
		printError("loading program", err)
		return errReported
	}

	engine := basic.NewEngine(basic.Options{Logger: logger})
	program, err := engine.Parse(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		return errReported
	}

	runID := uuid.New().String()
	logger.Debug("running program", tblog.Fields{"file": args[0], "lines": len(program), "run_id": runID})

	in, err := engine.RunWithID(ctx, runID, program, basic.WriterSink(os.Stdout))
	switch {
	case err == nil:
		logger.Debug("program finished", tblog.Fields{"run_id": runID, "steps": in.Steps()})
		return nil
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(os.Stderr, "Run interrupted")
	default:
		fmt.Fprintf(os.Stderr, "Runtime error: %v\n", err)
	}
	return errReported
}
