package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	tblog "github.com/msto63/tinybasic/foundation/core/log"
	"github.com/msto63/tinybasic/pkg/core/config"
	"github.com/msto63/tinybasic/pkg/core/logging"
)

var (
	cfgFile string
	verbose bool

	appConfig *config.Config
	logger    *tblog.Logger
)

// errReported marks failures whose message was already printed
var errReported = errors.New("reported")

var rootCmd = &cobra.Command{
	Use:   "tbasic",
	Short: "tinyBASIC - line-numbered BASIC interpreter",
	Long: `tinyBASIC is a small interpreter for a line-numbered BASIC dialect
with integer variables A-Z, one-dimensional arrays, PRINT, LET, GOTO,
IF ... THEN and END.

Without a subcommand tbasic starts the interactive shell.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runShell,
}

func Execute() error {
	err := rootCmd.ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, errReported) {
		printError("tbasic", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ./tbasic.toml, $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output (debug logging)")
}

// setup loads the configuration and creates the logger for every command
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadFromEnv(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	logger = logging.NewLogger(logging.FromConfig("tbasic", cfg, verbose))
	tblog.SetDefault(logger)
	logger.Debug("configuration loaded", tblog.Fields{
		"command": cmd.Name(),
		"backend": cfg.Storage.Backend,
	})
	return nil
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
