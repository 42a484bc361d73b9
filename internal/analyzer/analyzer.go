package analyzer

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/company-analyst/internal/llm"
	"github.com/jonathan/company-analyst/internal/prompts"
	"github.com/jonathan/company-analyst/internal/types"
)

// Searcher aggregates web search results for a company.
// Implemented by search.Aggregator; stubbed in tests.
type Searcher interface {
	Search(ctx context.Context, company string, numResults int) ([]types.SearchResult, error)
}

// Retriever returns previously stored chunks semantically similar to a query.
// Implemented by store.Store; stubbed in tests.
type Retriever interface {
	Retrieve(ctx context.Context, query string, threshold float64, limit int) ([]types.StoredChunk, error)
}

// Options tunes the analysis pipeline
type Options struct {
	NumResults     int     // total results requested across all sub-queries
	MatchThreshold float64 // minimum cosine similarity for prior knowledge
	MatchLimit     int     // maximum prior-knowledge chunks
}

// Analyzer owns one company research pipeline: search fan-out, retrieval
// context assembly, and the two-stage model extraction.
type Analyzer struct {
	searcher  Searcher
	retriever Retriever
	client    llm.Client
	opts      Options
	logger    *zap.Logger
}

// New creates an Analyzer. Zero-valued options fall back to the pipeline
// defaults (15 results, 0.7 threshold, 5 chunks).
func New(searcher Searcher, retriever Retriever, client llm.Client, opts Options, logger *zap.Logger) *Analyzer {
	if opts.NumResults == 0 {
		opts.NumResults = 15
	}
	if opts.MatchThreshold == 0 {
		opts.MatchThreshold = 0.7
	}
	if opts.MatchLimit == 0 {
		opts.MatchLimit = 5
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{
		searcher:  searcher,
		retriever: retriever,
		client:    client,
		opts:      opts,
		logger:    logger.Named("analyzer"),
	}
}

// Analyze runs the full pipeline for one company and always returns a
// complete, schema-valid report when the free-form analysis stage succeeds.
// Search, retrieval, and stage-1 model failures are hard errors; every
// stage-2 structuring failure degrades to the fallback report instead.
func (a *Analyzer) Analyze(ctx context.Context, company string) (*types.CompanyAnalysis, error) {
	results, err := a.searcher.Search(ctx, company, a.opts.NumResults)
	if err != nil {
		return nil, &APICallError{Message: "company search failed", Cause: err}
	}
	a.logger.Debug("search completed", zap.String("company", company), zap.Int("results", len(results)))

	contextBlock, err := a.buildContext(ctx, company, results)
	if err != nil {
		return nil, &APICallError{Message: "failed to build retrieval context", Cause: err}
	}

	analysisPrompt := prompts.Format(
		prompts.MustGet("analysis.json", "analyze-company"),
		map[string]string{
			"CompanyName":   company,
			"SearchResults": contextBlock,
		})

	analysisText, err := a.client.GenerateContent(ctx, analysisPrompt, llm.TierAdvanced)
	if err != nil {
		return nil, &APICallError{Message: "analysis generation failed", Cause: err}
	}

	analysis, err := a.structureAnalysis(ctx, company, analysisText)
	if err != nil {
		// Structuring failures degrade gracefully: the free-form analysis is
		// still useful, so it becomes the summary of a placeholder report.
		a.logger.Warn("falling back to unstructured report",
			zap.String("company", company), zap.Error(err))
		return Fallback(company, analysisText), nil
	}
	return analysis, nil
}
