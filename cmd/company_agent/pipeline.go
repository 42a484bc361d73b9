package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jonathan/company-analyst/internal/analyzer"
	"github.com/jonathan/company-analyst/internal/config"
	"github.com/jonathan/company-analyst/internal/embedding"
	"github.com/jonathan/company-analyst/internal/llm"
	"github.com/jonathan/company-analyst/internal/search"
	"github.com/jonathan/company-analyst/internal/store"
	"github.com/jonathan/company-analyst/internal/types"
)

// loadConfig builds the effective configuration: environment values first,
// file values filling the gaps, pipeline defaults last.
func loadConfig(path string) (config.Config, error) {
	cfg := config.FromEnv()

	var fileCfg config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config file: %w", err)
		}
		fileCfg = *loaded
	}

	merged := cfg.MergeWithDefaults(fileCfg)
	if err := merged.Validate(); err != nil {
		return config.Config{}, err
	}
	return merged, nil
}

// newLogger builds a structured logger on stderr. Stdout is reserved for
// command output and the session protocol.
func newLogger(verbose bool) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapCfg.OutputPaths = []string{"stderr"}
	zapCfg.ErrorOutputPaths = []string{"stderr"}
	if verbose {
		zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zapCfg.Build()
}

// pipeline bundles the shared clients behind the analysis pipeline. The
// store is nil when no database is configured; search still runs, results
// just are not persisted or retrieved.
type pipeline struct {
	cfg      config.Config
	logger   *zap.Logger
	client   llm.Client
	store    *store.Store
	searcher *search.Aggregator
}

func buildPipeline(ctx context.Context, cfg config.Config, logger *zap.Logger) (*pipeline, error) {
	if cfg.BraveAPIKey == "" {
		return nil, fmt.Errorf("BRAVE_SEARCH_API_KEY environment variable is required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	llmCfg := llm.DefaultConfig()
	if cfg.LLMModel != "" {
		llmCfg = llmCfg.
			WithModel(llm.TierStandard, cfg.LLMModel).
			WithModel(llm.TierAdvanced, cfg.LLMModel)
	}

	client, err := llm.NewClient(ctx, llmCfg, cfg.GeminiAPIKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create model client: %w", err)
	}

	p := &pipeline{cfg: cfg, logger: logger, client: client}

	var ingestor search.Ingestor
	if cfg.DatabaseURL != "" {
		embedder := embedding.NewGeminiProvider(cfg.GeminiAPIKey)
		st, err := store.Connect(ctx, cfg.DatabaseURL, embedder, logger)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		p.store = st
		ingestor = st
	} else {
		logger.Warn("no database configured, search results will not be persisted")
	}

	brave := search.NewClient(cfg.BraveAPIKey)
	p.searcher = search.NewAggregator(brave, ingestor, logger)
	return p, nil
}

// newAnalyzer builds a pipeline instance over the shared clients
func (p *pipeline) newAnalyzer() *analyzer.Analyzer {
	var retriever analyzer.Retriever = noopRetriever{}
	if p.store != nil {
		retriever = p.store
	}
	return analyzer.New(p.searcher, retriever, p.client, analyzer.Options{
		NumResults:     p.cfg.NumResults,
		MatchThreshold: p.cfg.MatchThreshold,
		MatchLimit:     p.cfg.MatchLimit,
	}, p.logger)
}

func (p *pipeline) Close() {
	if p.store != nil {
		p.store.Close()
	}
	if err := p.client.Close(); err != nil {
		p.logger.Warn("failed to close model client", zap.Error(err))
	}
}

// noopRetriever stands in for the vector store when no database is
// configured. Analysis then runs on fresh search results alone.
type noopRetriever struct{}

func (noopRetriever) Retrieve(context.Context, string, float64, int) ([]types.StoredChunk, error) {
	return nil, nil
}
