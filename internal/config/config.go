// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the application configuration. Values can be loaded from
// a JSON file, from the environment, or both; the environment wins for
// credentials so keys never need to live on disk.
type Config struct {
	// Credentials
	BraveAPIKey  string `json:"brave_api_key,omitempty"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`

	// External services
	DatabaseURL string `json:"database_url,omitempty" validate:"omitempty,uri"`

	// Model selection override; empty means the tier defaults apply
	LLMModel string `json:"llm_model,omitempty"`

	// Pipeline tuning
	NumResults     int     `json:"num_results,omitempty" validate:"omitempty,gte=0"`
	MatchThreshold float64 `json:"match_threshold,omitempty" validate:"omitempty,gte=0,lte=1"`
	MatchLimit     int     `json:"match_limit,omitempty" validate:"omitempty,gte=0"`

	// Behavior
	Verbose bool `json:"verbose,omitempty"`
}

// Pipeline defaults applied when neither file nor flags set a value.
const (
	DefaultNumResults     = 15
	DefaultMatchThreshold = 0.7
	DefaultMatchLimit     = 5
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from environment variables only.
func FromEnv() *Config {
	return &Config{
		BraveAPIKey:  os.Getenv("BRAVE_SEARCH_API_KEY"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		LLMModel:     os.Getenv("LLM_MODEL"),
	}
}

// Validate checks that the configuration has valid values.
// Required credentials are checked separately by each command since the
// one-shot and serve paths need different subsets.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: field %q failed %q validation", fe.Field(), fe.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// Explicit values always win over defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.BraveAPIKey == "" {
		result.BraveAPIKey = defaults.BraveAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.LLMModel == "" {
		result.LLMModel = defaults.LLMModel
	}

	if result.NumResults == 0 {
		if defaults.NumResults > 0 {
			result.NumResults = defaults.NumResults
		} else {
			result.NumResults = DefaultNumResults
		}
	}
	if result.MatchThreshold == 0 {
		if defaults.MatchThreshold > 0 {
			result.MatchThreshold = defaults.MatchThreshold
		} else {
			result.MatchThreshold = DefaultMatchThreshold
		}
	}
	if result.MatchLimit == 0 {
		if defaults.MatchLimit > 0 {
			result.MatchLimit = defaults.MatchLimit
		} else {
			result.MatchLimit = DefaultMatchLimit
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
