package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tinybasic/foundation/basic"
	tbast "github.com/msto63/tinybasic/foundation/basic/ast"
)

var listCmd = &cobra.Command{
	Use:   "list FILE",
	Short: "Prints a program in canonical form",
	Long: `Parses a program and prints it sorted by line number, one statement
per line, the way the shell's LIST command shows it. Jumps to lines that
do not exist are reported as warnings.`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	addSourceFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	source, err := loadSource(cmd.Context(), args[0])
	if err != nil {
		printError("loading program", err)
		return errReported
	}

	program, err := basic.NewEngine(basic.Options{Logger: logger}).Parse(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Parse error: %v\n", err)
		return errReported
	}

	fmt.Print(program.Source())
	for _, warning := range tbast.CheckTargets(program) {
		fmt.Fprintf(os.Stderr, "warning: %v\n", warning)
	}
	return nil
}
