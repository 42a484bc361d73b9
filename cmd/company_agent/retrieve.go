package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-analyst/internal/embedding"
	"github.com/jonathan/company-analyst/internal/observability"
	"github.com/jonathan/company-analyst/internal/store"
)

var retrieveCmd = &cobra.Command{
	Use:   "retrieve <query>",
	Short: "Run a similarity search against the vector store",
	Long:  "Embeds the query and prints the stored chunks above the similarity threshold. No search or model calls; useful for inspecting what earlier research the store would contribute to an analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRetrieve,
}

var (
	retrieveConfigPath string
	retrieveThreshold  float64
	retrieveLimit      int
)

func init() {
	retrieveCmd.Flags().StringVar(&retrieveConfigPath, "config", "", "Path to a JSON config file")
	retrieveCmd.Flags().Float64Var(&retrieveThreshold, "threshold", 0, "Minimum cosine similarity")
	retrieveCmd.Flags().IntVar(&retrieveLimit, "limit", 0, "Maximum chunks to return")
	rootCmd.AddCommand(retrieveCmd)
}

func runRetrieve(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig(retrieveConfigPath)
	if err != nil {
		return err
	}
	if retrieveThreshold > 0 {
		cfg.MatchThreshold = retrieveThreshold
	}
	if retrieveLimit > 0 {
		cfg.MatchLimit = retrieveLimit
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	embedder := embedding.NewGeminiProvider(cfg.GeminiAPIKey)
	st, err := store.Connect(ctx, cfg.DatabaseURL, embedder, logger)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()

	chunks, err := st.Retrieve(ctx, args[0], cfg.MatchThreshold, cfg.MatchLimit)
	if err != nil {
		return fmt.Errorf("retrieval failed: %w", err)
	}

	if len(chunks) == 0 {
		fmt.Println("No stored chunks above the similarity threshold.")
		return nil
	}
	observability.NewPrinter(os.Stdout).PrintStoredChunks(chunks)
	return nil
}
