package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/company-analyst/internal/mcp"
	"github.com/jonathan/company-analyst/internal/observability"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <company>",
	Short: "Run a one-shot company analysis",
	Long:  "Searches the web for the given company, stores the findings when a database is configured, and prints a structured markdown report to stdout.",
	Args:  cobra.ExactArgs(1),
	RunE:  runAnalyze,
}

var (
	analyzeConfigPath string
	analyzeNumResults int
	analyzeVerbose    bool
)

func init() {
	analyzeCmd.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to a JSON config file")
	analyzeCmd.Flags().IntVar(&analyzeNumResults, "num-results", 0, "Total search results across all sub-queries")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(analyzeConfigPath)
	if err != nil {
		return err
	}
	if analyzeNumResults > 0 {
		cfg.NumResults = analyzeNumResults
	}
	if analyzeVerbose {
		cfg.Verbose = true
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	p, err := buildPipeline(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer p.Close()

	company := args[0]
	logger.Info("analyzing company", zap.String("company", company))

	report, err := p.newAnalyzer().Analyze(ctx, company)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintAnalysisOverview(report)
	}

	fmt.Println(mcp.FormatAnalysis(report))
	return nil
}
