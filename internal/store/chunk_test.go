package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/company-analyst/internal/types"
)

func TestBuildChunks(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	t.Run("fields derived from the result", func(t *testing.T) {
		results := []types.SearchResult{
			{URL: "https://acme.example/about", Title: "About Acme", Description: "Anvil maker."},
			{URL: "https://acme.example/news", Title: "Acme News", Description: "Quarterly results."},
		}

		chunks := BuildChunks(results, "Acme", now)
		require.Len(t, chunks, 2)

		first := chunks[0]
		assert.Equal(t, "https://acme.example/about", first.URL)
		assert.Equal(t, 0, first.ChunkIndex)
		assert.Equal(t, "About Acme", first.Title)
		assert.Equal(t, "Anvil maker.", first.Summary)
		assert.Equal(t, "About Acme\nAnvil maker.", first.Content)
		assert.Equal(t, "Acme", first.Company)
		assert.Equal(t, 0, first.Metadata.Position)
		assert.Equal(t, "brave_search", first.Metadata.Source)
		assert.Equal(t, now, first.Metadata.QueryTime)

		assert.Equal(t, 1, chunks[1].ChunkIndex)
		assert.Equal(t, 1, chunks[1].Metadata.Position)
	})

	t.Run("summary truncated to 200 chars", func(t *testing.T) {
		long := strings.Repeat("x", 500)
		chunks := BuildChunks([]types.SearchResult{
			{URL: "https://a", Title: "t", Description: long},
		}, "Acme", now)

		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0].Summary, 200)
		// Content keeps the full description.
		assert.Equal(t, "t\n"+long, chunks[0].Content)
	})

	t.Run("empty page yields no chunks", func(t *testing.T) {
		chunks := BuildChunks(nil, "Acme", now)
		assert.Empty(t, chunks)
	})
}
