package analyzer

import (
	"context"
	"encoding/json"

	"github.com/jonathan/company-analyst/internal/llm"
	"github.com/jonathan/company-analyst/internal/prompts"
	"github.com/jonathan/company-analyst/internal/schemas"
	"github.com/jonathan/company-analyst/internal/types"
)

// structureAnalysis asks the model to coerce free-form analysis text into the
// fixed report shape and parses the answer. The outcome is an explicit value:
// a report, or a StructureError the caller turns into the fallback. Nothing
// here panics or swallows upstream errors.
func (a *Analyzer) structureAnalysis(ctx context.Context, company, analysisText string) (*types.CompanyAnalysis, error) {
	prompt := prompts.Format(
		prompts.MustGet("analysis.json", "structure-analysis"),
		map[string]string{
			"Analysis":    analysisText,
			"CompanyName": company,
		})

	raw, err := a.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil, &StructureError{Message: "structuring model call failed", Cause: err}
	}

	jsonText, ok := llm.ExtractJSONObject(raw)
	if !ok {
		return nil, &StructureError{Message: "no JSON object in model output"}
	}

	if err := schemas.ValidateCompanyAnalysis(jsonText); err != nil {
		return nil, &StructureError{Message: "report schema validation failed", Cause: err}
	}

	var analysis types.CompanyAnalysis
	if err := json.Unmarshal([]byte(jsonText), &analysis); err != nil {
		return nil, &StructureError{Message: "failed to decode report JSON", Cause: err}
	}
	return &analysis, nil
}
