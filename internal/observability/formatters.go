// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/company-analyst/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintSearchResults outputs a summary of the aggregated web search results.
func (p *Printer) PrintSearchResults(results []types.SearchResult) {
	if len(results) == 0 {
		p.printBox("SEARCH RESULTS", "No results found")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total results: %d\n\n", len(results)))

	count := min(len(results), maxItemsToShow)
	for i := 0; i < count; i++ {
		r := results[i]
		title := r.Title
		if len(title) > 50 {
			title = title[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		url := r.URL
		if len(url) > 48 {
			url = url[:45] + "..."
		}
		sb.WriteString(fmt.Sprintf("    %s\n", url))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(results) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more results", len(results)-maxItemsToShow))
	}

	p.printBox("SEARCH RESULTS", sb.String())
}

// PrintStoredChunks outputs the prior-knowledge chunks retrieved from the
// vector store, with similarity scores.
func (p *Printer) PrintStoredChunks(chunks []types.StoredChunk) {
	if len(chunks) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Retrieved %d chunks:\n\n", len(chunks)))

	count := min(len(chunks), maxItemsToShow)
	for i := 0; i < count; i++ {
		c := chunks[i]
		title := c.Title
		if len(title) > 44 {
			title = title[:41] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, title))
		sb.WriteString(fmt.Sprintf("    Similarity: %.2f\n", c.Similarity))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(chunks) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more chunks", len(chunks)-maxItemsToShow))
	}

	p.printBox("PRIOR KNOWLEDGE", sb.String())
}

// PrintAnalysisOverview outputs a compact summary of a finished report.
func (p *Printer) PrintAnalysisOverview(analysis *types.CompanyAnalysis) {
	if analysis == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Company:   %s\n", analysis.CompanyInfo.Name))
	sb.WriteString(fmt.Sprintf("Industry:  %s\n", analysis.CompanyInfo.Industry))
	sb.WriteString("\n")

	if len(analysis.CompanyInfo.KeyProducts) > 0 {
		sb.WriteString("Key Products:\n")
		count := min(len(analysis.CompanyInfo.KeyProducts), 3)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", analysis.CompanyInfo.KeyProducts[i]))
		}
		if len(analysis.CompanyInfo.KeyProducts) > 3 {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(analysis.CompanyInfo.KeyProducts)-3))
		}
		sb.WriteString("\n")
	}

	summary := analysis.Summary
	if len(summary) > 150 {
		summary = summary[:147] + "..."
	}
	sb.WriteString(fmt.Sprintf("Summary: %s\n", summary))
	sb.WriteString(fmt.Sprintf("Sources: %d", len(analysis.Sources)))

	p.printBox("ANALYSIS OVERVIEW", sb.String())
}
