package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config file", func(t *testing.T) {
		path := writeTempConfig(t, `{
			"database_url": "postgres://localhost:5432/analyst",
			"num_results": 20,
			"match_threshold": 0.8
		}`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "postgres://localhost:5432/analyst", cfg.DatabaseURL)
		assert.Equal(t, 20, cfg.NumResults)
		assert.Equal(t, 0.8, cfg.MatchThreshold)
	})

	t.Run("empty path", func(t *testing.T) {
		_, err := Load("")
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed JSON", func(t *testing.T) {
		path := writeTempConfig(t, `{not json`)
		_, err := Load(path)
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  Config{NumResults: 15, MatchThreshold: 0.7, MatchLimit: 5},
		},
		{
			name: "zero values allowed",
			cfg:  Config{},
		},
		{
			name:    "threshold above one",
			cfg:     Config{MatchThreshold: 1.5},
			wantErr: true,
		},
		{
			name:    "negative num results",
			cfg:     Config{NumResults: -1},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	t.Run("explicit values win", func(t *testing.T) {
		cfg := Config{NumResults: 30, MatchThreshold: 0.9, BraveAPIKey: "explicit"}
		merged := cfg.MergeWithDefaults(Config{NumResults: 10, BraveAPIKey: "default"})

		assert.Equal(t, 30, merged.NumResults)
		assert.Equal(t, 0.9, merged.MatchThreshold)
		assert.Equal(t, "explicit", merged.BraveAPIKey)
	})

	t.Run("empty fields filled from defaults", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(Config{GeminiAPIKey: "from-default", DatabaseURL: "postgres://h/db"})

		assert.Equal(t, "from-default", merged.GeminiAPIKey)
		assert.Equal(t, "postgres://h/db", merged.DatabaseURL)
	})

	t.Run("built-in defaults when nothing set", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(Config{})

		assert.Equal(t, DefaultNumResults, merged.NumResults)
		assert.Equal(t, DefaultMatchThreshold, merged.MatchThreshold)
		assert.Equal(t, DefaultMatchLimit, merged.MatchLimit)
	})
}

func TestFromEnv(t *testing.T) {
	t.Setenv("BRAVE_SEARCH_API_KEY", "brave-key")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("DATABASE_URL", "postgres://env/db")
	t.Setenv("LLM_MODEL", "gemini-2.5-flash")

	cfg := FromEnv()
	assert.Equal(t, "brave-key", cfg.BraveAPIKey)
	assert.Equal(t, "gemini-key", cfg.GeminiAPIKey)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
	assert.Equal(t, "gemini-2.5-flash", cfg.LLMModel)
}
