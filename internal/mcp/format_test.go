package mcp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/company-analyst/internal/types"
)

func sampleAnalysis() *types.CompanyAnalysis {
	return &types.CompanyAnalysis{
		CompanyInfo: types.CompanyInfo{
			Name:         "Tesla",
			Industry:     "Automotive",
			Description:  "Electric vehicle maker",
			Founded:      "2003",
			Headquarters: "Austin, Texas",
			KeyProducts:  []string{"Model 3", "Model Y"},
			Competitors:  []string{"Ford", "BYD"},
		},
		FinancialAnalysis: types.FinancialAnalysis{
			Revenue:           "$96B",
			ProfitMargin:      "15%",
			MarketCap:         "$800B",
			PERatio:           "70",
			RecentPerformance: "Strong deliveries",
			GrowthProspects:   "Expanding energy business",
		},
		MarketAnalysis: types.MarketAnalysis{
			MarketPosition: "EV market leader",
			MarketShare:    "18%",
			TargetAudience: "Early adopters",
			MarketTrends:   "Electrification",
			Opportunities:  []string{"Energy storage"},
			Threats:        []string{"Price competition"},
		},
		StrengthsWeaknesses: types.StrengthsWeaknesses{
			Strengths:  []string{"Brand", "Charging network"},
			Weaknesses: []string{"Key person risk"},
		},
		Summary: "Tesla leads the EV market.",
		Sources: []string{"https://example.com/tesla"},
	}
}

func TestFormatAnalysis(t *testing.T) {
	out := FormatAnalysis(sampleAnalysis())

	assert.True(t, strings.HasPrefix(out, "# Analysis of Tesla\n"))
	assert.Contains(t, out, "## Company Information\n")
	assert.Contains(t, out, "- **Industry**: Automotive\n")
	assert.Contains(t, out, "  - Model 3\n")
	assert.Contains(t, out, "## Financial Analysis\n")
	assert.Contains(t, out, "- **P/E Ratio**: 70\n")
	assert.Contains(t, out, "## Market Analysis\n")
	assert.Contains(t, out, "- **Market Position**: EV market leader\n")
	assert.Contains(t, out, "## Strengths & Weaknesses\n")
	assert.Contains(t, out, "### Strengths\n")
	assert.Contains(t, out, "### Weaknesses\n")
	assert.Contains(t, out, "## Executive Summary\nTesla leads the EV market.\n")
	assert.Contains(t, out, "## Sources\n- https://example.com/tesla\n")
}

func TestFormatAnalysisSectionOrder(t *testing.T) {
	out := FormatAnalysis(sampleAnalysis())

	sections := []string{
		"## Company Information",
		"## Financial Analysis",
		"## Market Analysis",
		"## Strengths & Weaknesses",
		"## Executive Summary",
		"## Sources",
	}

	prev := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		assert.Greater(t, idx, prev, "section %q out of order", section)
		prev = idx
	}
}
