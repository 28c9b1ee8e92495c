// Package main is the entry point for the pulse CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/focus-pulse/internal/app"
	"github.com/runoshun/focus-pulse/internal/cli"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) (err error) {
	// Create dependency injection container
	container, err := app.New()
	if err != nil {
		// Help and version still work when the data store cannot be opened
		if canRunWithoutStore(args) {
			rootCmd := cli.NewRootCommand(nil, version)
			rootCmd.SetArgs(args)
			return rootCmd.Execute()
		}
		return fmt.Errorf("failed to initialize: %w", err)
	}
	defer func() {
		err = errors.Join(err, container.Close())
	}()

	// Create and execute root command
	rootCmd := cli.NewRootCommand(container, version)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// canRunWithoutStore reports whether args only ask for help or the version.
func canRunWithoutStore(args []string) bool {
	if len(args) == 0 {
		return false
	}
	switch args[0] {
	case "help", "completion":
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
