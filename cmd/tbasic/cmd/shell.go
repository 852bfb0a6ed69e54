package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/msto63/tinybasic/internal/shell"
	"github.com/msto63/tinybasic/internal/storage"
)

var (
	shellPrompt  string
	shellNoColor bool
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Starts the interactive shell",
	Long: `Starts the interactive tinyBASIC shell.

Numbered lines are added to the program, a line with an existing number
replaces it. Commands: RUN, LIST, NEW, LOAD name, SAVE name, DIR, QUIT.
Ctrl-C stops a running program.`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	shellCmd.Flags().StringVar(&shellPrompt, "prompt", "", "Prompt (default from config)")
	shellCmd.Flags().BoolVar(&shellNoColor, "no-color", false, "Disable colored output")
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(appConfig.Storage, logger)
	if err != nil {
		printError("opening storage", err)
		return errReported
	}
	defer store.Close()

	prompt := appConfig.Shell.Prompt
	if shellPrompt != "" {
		prompt = shellPrompt
	}

	sh := shell.New(shell.Options{
		In:          os.Stdin,
		Out:         os.Stdout,
		Err:         os.Stderr,
		Storage:     store,
		Logger:      logger,
		Prompt:      prompt,
		Banner:      appConfig.Shell.Banner,
		Color:       appConfig.Shell.Color && !shellNoColor,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
	})
	return sh.Run(cmd.Context())
}
