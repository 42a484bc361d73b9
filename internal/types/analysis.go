// Package types provides type definitions for structured data used throughout the company-analyst system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CompanyInfo represents basic information about a company
type CompanyInfo struct {
	Name         string   `json:"name"`
	Industry     string   `json:"industry"`
	Description  string   `json:"description"`
	Founded      string   `json:"founded"`
	Headquarters string   `json:"headquarters"`
	KeyProducts  []string `json:"key_products"`
	Competitors  []string `json:"competitors"`
}

// FinancialAnalysis represents the financial portion of an analysis.
// All fields are free-text as produced by the model.
type FinancialAnalysis struct {
	Revenue           string `json:"revenue"`
	ProfitMargin      string `json:"profit_margin"`
	MarketCap         string `json:"market_cap"`
	PERatio           string `json:"pe_ratio"`
	RecentPerformance string `json:"recent_performance"`
	GrowthProspects   string `json:"growth_prospects"`
}

// MarketAnalysis represents the market positioning portion of an analysis
type MarketAnalysis struct {
	MarketPosition string   `json:"market_position"`
	MarketShare    string   `json:"market_share"`
	TargetAudience string   `json:"target_audience"`
	MarketTrends   string   `json:"market_trends"`
	Opportunities  []string `json:"opportunities"`
	Threats        []string `json:"threats"`
}

// StrengthsWeaknesses represents a SWOT-style strengths/weaknesses split
type StrengthsWeaknesses struct {
	Strengths  []string `json:"strengths"`
	Weaknesses []string `json:"weaknesses"`
}

// CompanyAnalysis is the complete fixed-schema analysis report.
// Once constructed (structured parse or fallback) every field is populated;
// no partial value ever reaches a caller.
type CompanyAnalysis struct {
	CompanyInfo         CompanyInfo         `json:"company_info"`
	FinancialAnalysis   FinancialAnalysis   `json:"financial_analysis"`
	MarketAnalysis      MarketAnalysis      `json:"market_analysis"`
	StrengthsWeaknesses StrengthsWeaknesses `json:"strengths_weaknesses"`
	Summary             string              `json:"summary"`
	Sources             []string            `json:"sources"`
}
