package mcp

import (
	"fmt"
	"strings"

	"github.com/jonathan/company-analyst/internal/types"
)

// FormatAnalysis renders a report as section-headed markdown for human
// consumption. Section order is fixed: company information, financials,
// market, strengths/weaknesses, executive summary, sources.
func FormatAnalysis(analysis *types.CompanyAnalysis) string {
	var sb strings.Builder

	info := analysis.CompanyInfo
	financial := analysis.FinancialAnalysis
	market := analysis.MarketAnalysis
	sw := analysis.StrengthsWeaknesses

	fmt.Fprintf(&sb, "# Analysis of %s\n\n", info.Name)

	sb.WriteString("## Company Information\n")
	fmt.Fprintf(&sb, "- **Industry**: %s\n", info.Industry)
	fmt.Fprintf(&sb, "- **Description**: %s\n", info.Description)
	fmt.Fprintf(&sb, "- **Founded**: %s\n", info.Founded)
	fmt.Fprintf(&sb, "- **Headquarters**: %s\n", info.Headquarters)
	sb.WriteString("- **Key Products/Services**:\n")
	for _, product := range info.KeyProducts {
		fmt.Fprintf(&sb, "  - %s\n", product)
	}
	sb.WriteString("- **Main Competitors**:\n")
	for _, competitor := range info.Competitors {
		fmt.Fprintf(&sb, "  - %s\n", competitor)
	}

	sb.WriteString("\n## Financial Analysis\n")
	fmt.Fprintf(&sb, "- **Revenue**: %s\n", financial.Revenue)
	fmt.Fprintf(&sb, "- **Profit Margin**: %s\n", financial.ProfitMargin)
	fmt.Fprintf(&sb, "- **Market Cap**: %s\n", financial.MarketCap)
	fmt.Fprintf(&sb, "- **P/E Ratio**: %s\n", financial.PERatio)
	fmt.Fprintf(&sb, "- **Recent Performance**: %s\n", financial.RecentPerformance)
	fmt.Fprintf(&sb, "- **Growth Prospects**: %s\n", financial.GrowthProspects)

	sb.WriteString("\n## Market Analysis\n")
	fmt.Fprintf(&sb, "- **Market Position**: %s\n", market.MarketPosition)
	fmt.Fprintf(&sb, "- **Market Share**: %s\n", market.MarketShare)
	fmt.Fprintf(&sb, "- **Target Audience**: %s\n", market.TargetAudience)
	fmt.Fprintf(&sb, "- **Market Trends**: %s\n", market.MarketTrends)
	sb.WriteString("- **Opportunities**:\n")
	for _, opportunity := range market.Opportunities {
		fmt.Fprintf(&sb, "  - %s\n", opportunity)
	}
	sb.WriteString("- **Threats**:\n")
	for _, threat := range market.Threats {
		fmt.Fprintf(&sb, "  - %s\n", threat)
	}

	sb.WriteString("\n## Strengths & Weaknesses\n")
	sb.WriteString("### Strengths\n")
	for _, strength := range sw.Strengths {
		fmt.Fprintf(&sb, "- %s\n", strength)
	}
	sb.WriteString("\n### Weaknesses\n")
	for _, weakness := range sw.Weaknesses {
		fmt.Fprintf(&sb, "- %s\n", weakness)
	}

	fmt.Fprintf(&sb, "\n## Executive Summary\n%s\n", analysis.Summary)

	sb.WriteString("\n## Sources\n")
	for _, source := range analysis.Sources {
		fmt.Fprintf(&sb, "- %s\n", source)
	}

	return sb.String()
}
