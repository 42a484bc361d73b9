// Package store persists embedded search-result chunks in a pgvector-backed
// Postgres table and retrieves them by cosine similarity.
package store

import (
	"time"
	"unicode/utf8"

	"github.com/jonathan/company-analyst/internal/types"
)

// summaryLimit caps the stored summary length
const summaryLimit = 200

// sourceTag marks chunks originating from the web search provider
const sourceTag = "brave_search"

// BuildChunks converts one sub-query's result page into stored chunks.
// ChunkIndex is the position within this page; chunks are never mutated after
// construction.
func BuildChunks(results []types.SearchResult, company string, queryTime time.Time) []types.StoredChunk {
	chunks := make([]types.StoredChunk, 0, len(results))
	for i, r := range results {
		chunks = append(chunks, types.StoredChunk{
			URL:        r.URL,
			ChunkIndex: i,
			Title:      r.Title,
			Summary:    truncate(r.Description, summaryLimit),
			Content:    r.Title + "\n" + r.Description,
			Company:    company,
			Metadata: types.ChunkMetadata{
				Position:  i,
				Source:    sourceTag,
				QueryTime: queryTime,
			},
		})
	}
	return chunks
}

func truncate(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}
