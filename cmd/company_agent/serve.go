package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jonathan/company-analyst/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the session server on stdin/stdout",
	Long:  "Reads one JSON request per line from stdin and writes one JSON response per line to stdout. Supports mcp_create_thread and mcp_run_agent. Logs go to stderr.",
	RunE:  runServe,
}

var (
	serveConfigPath string
	serveVerbose    bool
)

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to a JSON config file")
	serveCmd.Flags().BoolVarP(&serveVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig(serveConfigPath)
	if err != nil {
		return err
	}
	if serveVerbose {
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

	sessions := mcp.NewSessionStore(func() (mcp.Analyzer, error) {
		return p.newAnalyzer(), nil
	})
	defer sessions.Clear()

	server := mcp.NewServer(sessions, logger)
	logger.Info("session server started")

	done := make(chan error, 1)
	go func() {
		done <- server.Serve(ctx, os.Stdin, os.Stdout)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
		return nil
	case err := <-done:
		if err != nil {
			return fmt.Errorf("session server stopped: %w", err)
		}
		logger.Info("input closed, exiting")
		return nil
	}
}
