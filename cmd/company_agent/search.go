package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-analyst/internal/observability"
	"github.com/jonathan/company-analyst/internal/search"
)

var searchCmd = &cobra.Command{
	Use:   "search <company>",
	Short: "Run the search fan-out without analysis",
	Long:  "Runs the multi-query web search for a company and prints the aggregated results. Nothing is stored and no model is called; useful for checking search coverage and API credentials.",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var (
	searchConfigPath string
	searchNumResults int
)

func init() {
	searchCmd.Flags().StringVar(&searchConfigPath, "config", "", "Path to a JSON config file")
	searchCmd.Flags().IntVar(&searchNumResults, "num-results", 0, "Total search results across all sub-queries")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(searchConfigPath)
	if err != nil {
		return err
	}
	if searchNumResults > 0 {
		cfg.NumResults = searchNumResults
	}
	if cfg.BraveAPIKey == "" {
		return fmt.Errorf("BRAVE_SEARCH_API_KEY environment variable is required")
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	brave := search.NewClient(cfg.BraveAPIKey)
	aggregator := search.NewAggregator(brave, nil, logger)

	results, err := aggregator.Search(ctx, args[0], cfg.NumResults)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintSearchResults(results)
	return nil
}
