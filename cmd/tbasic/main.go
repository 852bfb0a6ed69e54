package main

import (
	"os"

	"github.com/msto63/tinybasic/cmd/tbasic/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
