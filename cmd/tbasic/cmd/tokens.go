package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/tinybasic/foundation/basic"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Prints the token stream of a program",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	addSourceFlags(tokensCmd)
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	source, err := loadSource(cmd.Context(), args[0])
	if err != nil {
		printError("loading program", err)
		return errReported
	}

	tokens, err := basic.NewEngine(basic.Options{Logger: logger}).Tokenize(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Lexical error: %v\n", err)
		return errReported
	}

	for _, tok := range tokens {
		fmt.Printf("%4d:%-3d %s\n", tok.Line, tok.Column, tok)
	}
	return nil
}
