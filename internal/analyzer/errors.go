// Package analyzer drives the two-stage company analysis: free-form synthesis
// from retrieval-augmented search context, then structuring into the fixed
// report schema with a guaranteed fallback.
package analyzer

import "fmt"

// APICallError represents a hard upstream failure (search, retrieval, or the
// stage-1 model call). These always propagate; they are never converted into
// a fallback report.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("API call failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("API call failed: %s", e.Message)
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// StructureError represents a stage-2 failure: the structuring model call
// itself, a missing JSON object, a schema violation, or a decode failure.
// Callers recover from it by building the fallback report; it never reaches
// users as an error.
type StructureError struct {
	Message string
	Cause   error
}

func (e *StructureError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("structuring failed: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("structuring failed: %s", e.Message)
}

func (e *StructureError) Unwrap() error {
	return e.Cause
}
