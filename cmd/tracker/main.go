// Package main implements the entry point for the tracker binary.
package main

import (
	"os"

	"github.com/phrazzld/practice-tracker/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
