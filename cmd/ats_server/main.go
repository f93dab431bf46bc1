// Package main provides the entry point for the candidate-job matcher HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ats_server",
	Short: "Candidate-Job Matcher HTTP API Server",
	Long:  "Ranks candidates against job listings (and jobs against candidates) using fuzzy skill, title, experience and location matching, exposed via REST API and offline CLI commands.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
