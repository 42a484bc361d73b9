package analyzer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/company-analyst/internal/types"
)

// buildContext renders fresh search results plus semantically similar prior
// knowledge into one prompt-ready text block. Formatting is deterministic
// given the inputs and the store's current contents; the only external call
// is the retrieval itself.
func (a *Analyzer) buildContext(ctx context.Context, company string, fresh []types.SearchResult) (string, error) {
	var sb strings.Builder

	for i, r := range fresh {
		fmt.Fprintf(&sb, "[%d] %s\n", i+1, orPlaceholder(r.Title, "No title"))
		fmt.Fprintf(&sb, "URL: %s\n", orPlaceholder(r.URL, "No URL"))
		fmt.Fprintf(&sb, "Description: %s\n\n", orPlaceholder(r.Description, "No description"))
	}

	chunks, err := a.retriever.Retrieve(ctx, company+" company analysis", a.opts.MatchThreshold, a.opts.MatchLimit)
	if err != nil {
		return "", err
	}

	for i, c := range chunks {
		fmt.Fprintf(&sb, "[VDB %d] %s\n", i+1, orPlaceholder(c.Title, "No title"))
		fmt.Fprintf(&sb, "URL: %s\n", orPlaceholder(c.URL, "No URL"))
		fmt.Fprintf(&sb, "Content: %s\n\n", orPlaceholder(c.Content, "No content"))
	}

	return sb.String(), nil
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
