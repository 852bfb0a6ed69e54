package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/msto63/tinybasic/pkg/core/version"
)

var (
	Version   = version.Release
	GitCommit = "development"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Shows the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tinyBASIC v%s (%s)\n", Version, version.Dialect)
		fmt.Printf("  Core:       %s\n", version.ComponentVersion("core"))
		fmt.Printf("  Shell:      %s\n", version.ComponentVersion("shell"))
		fmt.Printf("  Storage:    %s\n", version.ComponentVersion("storage"))
		fmt.Printf("  Git Commit: %s\n", GitCommit)
		fmt.Printf("  Build Date: %s\n", BuildDate)
		fmt.Printf("  Go Version: %s\n", runtime.Version())
		fmt.Printf("  OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
