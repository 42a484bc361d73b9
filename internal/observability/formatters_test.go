package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/company-analyst/internal/types"
)

func TestPrintSearchResults(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := []types.SearchResult{
		{URL: "https://example.com/a", Title: "Acme overview", Description: "About Acme"},
		{URL: "https://example.com/b", Title: "Acme earnings", Description: "Q2 results"},
	}
	p.PrintSearchResults(results)

	out := buf.String()
	assert.Contains(t, out, "SEARCH RESULTS")
	assert.Contains(t, out, "Total results: 2")
	assert.Contains(t, out, "#1  Acme overview")
	assert.Contains(t, out, "https://example.com/b")
}

func TestPrintSearchResultsEmpty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSearchResults(nil)

	assert.Contains(t, buf.String(), "No results found")
}

func TestPrintSearchResultsTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	results := make([]types.SearchResult, 8)
	for i := range results {
		results[i] = types.SearchResult{URL: "https://example.com", Title: "Result"}
	}
	p.PrintSearchResults(results)

	assert.Contains(t, buf.String(), "... and 3 more results")
}

func TestPrintStoredChunks(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	chunks := []types.StoredChunk{
		{Title: "Earlier research", Similarity: 0.91},
	}
	p.PrintStoredChunks(chunks)

	out := buf.String()
	assert.Contains(t, out, "PRIOR KNOWLEDGE")
	assert.Contains(t, out, "Similarity: 0.91")
}

func TestPrintStoredChunksEmptyPrintsNothing(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintStoredChunks(nil)

	assert.Empty(t, buf.String())
}

func TestPrintAnalysisOverview(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAnalysisOverview(&types.CompanyAnalysis{
		CompanyInfo: types.CompanyInfo{
			Name:        "Tesla",
			Industry:    "Automotive",
			KeyProducts: []string{"Model 3", "Model Y", "Powerwall", "Semi"},
		},
		Summary: "Tesla leads the EV market.",
		Sources: []string{"a", "b"},
	})

	out := buf.String()
	assert.Contains(t, out, "ANALYSIS OVERVIEW")
	assert.Contains(t, out, "Company:   Tesla")
	assert.Contains(t, out, "... and 1 more")
	assert.Contains(t, out, "Sources: 2")
}

func TestBoxLinesShareWidth(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", "short\n"+strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n") {
		assert.Equal(t, boxWidth, len([]rune(line)), "line %q", line)
	}
}
