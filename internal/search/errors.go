// Package search provides web search aggregation over the Brave Search API.
package search

import "fmt"

// ProviderError represents a failed call to the search provider.
// A non-2xx status or an unreadable response body is always a hard failure;
// there is no partial-result recovery for a failed sub-query.
type ProviderError struct {
	Query      string
	StatusCode int
	Message    string
	Cause      error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("search provider error for %q: status %d: %s", e.Query, e.StatusCode, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("search provider error for %q: %s: %v", e.Query, e.Message, e.Cause)
	}
	return fmt.Sprintf("search provider error for %q: %s", e.Query, e.Message)
}

func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// IngestError represents a failure persisting a sub-query's results.
// Persistence shares a failure domain with search on purpose: a store that
// silently diverges from what the analysis saw is worse than a failed request.
type IngestError struct {
	Query string
	Cause error
}

func (e *IngestError) Error() string {
	return fmt.Sprintf("failed to ingest results for %q: %v", e.Query, e.Cause)
}

func (e *IngestError) Unwrap() error {
	return e.Cause
}
