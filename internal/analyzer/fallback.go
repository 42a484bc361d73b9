package analyzer

import "github.com/jonathan/company-analyst/internal/types"

// NotStructured is the placeholder written into every structured field of a
// fallback report.
const NotStructured = "Information not structured"

// Fallback builds a schema-valid report when structuring fails: every
// structured leaf holds the placeholder, every list holds exactly one
// placeholder element, and the verbatim free-form analysis becomes the
// summary. This is the terminal recovery path; it cannot fail.
func Fallback(company, analysisText string) *types.CompanyAnalysis {
	return &types.CompanyAnalysis{
		CompanyInfo: types.CompanyInfo{
			Name:         company,
			Industry:     NotStructured,
			Description:  "See summary for details",
			Founded:      NotStructured,
			Headquarters: NotStructured,
			KeyProducts:  []string{NotStructured},
			Competitors:  []string{NotStructured},
		},
		FinancialAnalysis: types.FinancialAnalysis{
			Revenue:           NotStructured,
			ProfitMargin:      NotStructured,
			MarketCap:         NotStructured,
			PERatio:           NotStructured,
			RecentPerformance: NotStructured,
			GrowthProspects:   NotStructured,
		},
		MarketAnalysis: types.MarketAnalysis{
			MarketPosition: NotStructured,
			MarketShare:    NotStructured,
			TargetAudience: NotStructured,
			MarketTrends:   NotStructured,
			Opportunities:  []string{NotStructured},
			Threats:        []string{NotStructured},
		},
		StrengthsWeaknesses: types.StrengthsWeaknesses{
			Strengths:  []string{NotStructured},
			Weaknesses: []string{NotStructured},
		},
		Summary: analysisText,
		Sources: []string{NotStructured},
	}
}
