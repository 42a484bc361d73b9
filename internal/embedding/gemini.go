package embedding

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// geminiModel is the named embedding model
const geminiModel = "text-embedding-004"

// geminiEndpoint is the embedContent REST endpoint for the model
const geminiEndpoint = "https://generativelanguage.googleapis.com/v1/models/" + geminiModel + ":embedContent"

// GeminiProvider implements Provider against the Gemini embedContent API
type GeminiProvider struct {
	httpClient *http.Client
	apiKey     string
	endpoint   string
}

// GeminiOption customizes a GeminiProvider
type GeminiOption func(*GeminiProvider)

// WithHTTPClient sets a custom HTTP client (used by tests)
func WithHTTPClient(hc *http.Client) GeminiOption {
	return func(p *GeminiProvider) { p.httpClient = hc }
}

// WithEndpoint overrides the embedContent endpoint (used by tests)
func WithEndpoint(u string) GeminiOption {
	return func(p *GeminiProvider) { p.endpoint = u }
}

// NewGeminiProvider creates a Provider backed by the Gemini embedding API
func NewGeminiProvider(apiKey string, opts ...GeminiOption) *GeminiProvider {
	p := &GeminiProvider{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		endpoint:   geminiEndpoint,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type embedRequest struct {
	Model   string       `json:"model"`
	Content embedContent `json:"content"`
}

type embedContent struct {
	Parts []embedPart `json:"parts"`
}

type embedPart struct {
	Text string `json:"text"`
}

type embedResponse struct {
	Embedding struct {
		Values []float32 `json:"values"`
	} `json:"embedding"`
}

// Embed requests a single embedding for text. The call is made exactly once;
// any transport or status failure propagates to the caller.
func (p *GeminiProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	payload, err := json.Marshal(embedRequest{
		Model:   "models/" + geminiModel,
		Content: embedContent{Parts: []embedPart{{Text: text}}},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embedding request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build embedding request: %w", err)
	}
	req.Header.Set("x-goog-api-key", p.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("embedding request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedding response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("embedding service returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded embedResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("malformed embedding response: %w", err)
	}

	if len(decoded.Embedding.Values) == 0 {
		return nil, fmt.Errorf("embedding response contained no values")
	}
	return decoded.Embedding.Values, nil
}
