package search

import (
	"context"

	"go.uber.org/zap"

	"github.com/jonathan/company-analyst/internal/types"
)

// querySuffixes are the fixed topical angles researched for every company.
// The query count is a compile-time invariant: the per-query quota divides
// numResults by len(querySuffixes), which is always >= 1.
var querySuffixes = []string{
	"company information",
	"financial performance",
	"market analysis",
	"competitors",
	"recent news",
}

// Queries returns the fixed set of topic-qualified search queries for a company
func Queries(company string) []string {
	queries := make([]string, 0, len(querySuffixes))
	for _, suffix := range querySuffixes {
		queries = append(queries, company+" "+suffix)
	}
	return queries
}

// Ingestor persists one sub-query's results into the vector store.
// Implemented by store.Store; stubbed in tests.
type Ingestor interface {
	IngestResults(ctx context.Context, results []types.SearchResult, company string) error
}

// Aggregator fans a company research request out across the fixed query set
// and merges the pages into one result set, persisting each page as it lands.
type Aggregator struct {
	client   *Client
	ingestor Ingestor
	logger   *zap.Logger
}

// NewAggregator creates an Aggregator. The ingestor may be nil, in which case
// results are not persisted (used by store-less smoke runs and tests).
func NewAggregator(client *Client, ingestor Ingestor, logger *zap.Logger) *Aggregator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Aggregator{
		client:   client,
		ingestor: ingestor,
		logger:   logger.Named("search"),
	}
}

// Search issues one sub-query per topical angle, splitting numResults evenly
// across them (integer division), and returns the merged results in
// (query order, provider order). Duplicates across sub-queries are kept.
//
// Each sub-query's page is ingested before the next query runs; both a
// provider failure and an ingest failure abort the whole aggregation.
func (a *Aggregator) Search(ctx context.Context, company string, numResults int) ([]types.SearchResult, error) {
	queries := Queries(company)
	perQuery := numResults / len(queries)

	var merged []types.SearchResult
	for _, query := range queries {
		page, err := a.client.Search(ctx, query, perQuery)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("sub-query completed",
			zap.String("query", query),
			zap.Int("results", len(page)))

		if a.ingestor != nil {
			if err := a.ingestor.IngestResults(ctx, page, company); err != nil {
				return nil, &IngestError{Query: query, Cause: err}
			}
		}

		merged = append(merged, page...)
	}
	return merged, nil
}
