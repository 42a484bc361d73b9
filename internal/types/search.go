package types

import "time"

// SearchResult represents a single web search hit as returned by the provider.
// Ordering within one query's page is provider-defined and preserved on merge.
type SearchResult struct {
	URL         string `json:"url"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ChunkMetadata is the auxiliary metadata stored alongside each chunk
type ChunkMetadata struct {
	Position  int       `json:"position"`   // index within the originating query's page
	Source    string    `json:"source"`     // originating provider tag, e.g. "brave_search"
	QueryTime time.Time `json:"query_time"` // when the result was retrieved
}

// StoredChunk represents one persisted, embedded unit of search-result text.
// Chunks are created once at ingestion time and never mutated.
type StoredChunk struct {
	URL        string        `json:"url"`
	ChunkIndex int           `json:"chunk_number"`
	Title      string        `json:"title"`
	Summary    string        `json:"summary"` // description truncated to 200 chars
	Content    string        `json:"content"` // title + description
	Company    string        `json:"company_name,omitempty"`
	Metadata   ChunkMetadata `json:"metadata"`
	Embedding  []float32     `json:"-"`
	Similarity float64       `json:"similarity,omitempty"` // populated on retrieval only
}
