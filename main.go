// Package main is the entry point for the socialgraph service.
package main

import (
	"fmt"
	"os"

	"socialgraph/bootstrap"
	"socialgraph/cmd"
)

// run initializes and starts the service, then blocks until a
// shutdown signal arrives.
func run() error {
	app, err := bootstrap.NewApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	if err := app.Start(); err != nil {
		app.Shutdown()
		return fmt.Errorf("failed to start application: %w", err)
	}

	app.WaitForShutdown()
	app.Shutdown()
	return nil
}

// main dispatches CLI subcommands, otherwise runs the server.
func main() {
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		os.Args = append([]string{os.Args[0]}, os.Args[2:]...)
		if err := cmd.NewSeedCmd().Execute(); err != nil {
			os.Exit(1)
		}
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
