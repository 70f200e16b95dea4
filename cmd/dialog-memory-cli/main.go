// Package main is the entry point for the dialog-memory-cli application.
// It registers the dialog commands with the root command and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MGTheTrain/dialog-memory/cmd/dialog-memory-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := commands.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
