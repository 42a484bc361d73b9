// Package main provides the entry point for the company analyst agent.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "company_agent",
	Short: "Company research and analysis agent",
	Long:  "Company analyst researches a company via web search, stores findings in a vector database, and produces a structured analysis report. Runs as a one-shot CLI or as a line-delimited JSON session server on stdin/stdout.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
