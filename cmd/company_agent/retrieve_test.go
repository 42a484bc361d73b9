package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunRetrieveRequiresDatabase(t *testing.T) {
	t.Setenv("BRAVE_SEARCH_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LLM_MODEL", "")

	err := runRetrieve(nil, []string{"Acme company analysis"})
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestRunRetrieveRequiresAPIKey(t *testing.T) {
	t.Setenv("BRAVE_SEARCH_API_KEY", "")
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/analyst")
	t.Setenv("LLM_MODEL", "")

	err := runRetrieve(nil, []string{"Acme company analysis"})
	assert.ErrorContains(t, err, "GEMINI_API_KEY")
}
