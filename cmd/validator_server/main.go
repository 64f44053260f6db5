// Package main provides the entry point for the JSON validator API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "validator_server",
	Short: "JSON Validator API Server",
	Long:  "JSON Validator exposes an HTTP API that checks candidate text for JSON well-formedness by delegating to an external Java validator and translating its console output into a structured verdict.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
