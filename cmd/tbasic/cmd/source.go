package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/msto63/tinybasic/internal/storage"
)

// fromStorage reads program names from the configured storage backend
// instead of the file system
var fromStorage bool

func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&fromStorage, "stored", "s", false, "Read the program from the configured storage instead of a file")
}

// loadSource reads a program by file path or, with --stored, by name
func loadSource(ctx context.Context, name string) (string, error) {
	var (
		store storage.Storage
		err   error
	)
	if fromStorage {
		store, err = storage.Open(appConfig.Storage, logger)
	} else {
		store, err = storage.NewFileStorage(".", logger)
	}
	if err != nil {
		return "", err
	}
	defer store.Close()

	return store.Load(ctx, name)
}
