package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonathan/company-analyst/internal/types"
)

// braveSearchURL is the Brave web search endpoint
const braveSearchURL = "https://api.search.brave.com/res/v1/web/search"

// Client is a minimal Brave Search API client.
// Every call is attempted exactly once; retry policy belongs to callers.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// ClientOption customizes a Client
type ClientOption func(*Client)

// WithHTTPClient sets a custom HTTP client (used by tests)
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithBaseURL overrides the search endpoint (used by tests)
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// NewClient creates a Brave Search client authenticated with the given
// subscription token.
func NewClient(apiKey string, opts ...ClientOption) *Client {
	c := &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    braveSearchURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// braveResponse mirrors the subset of the Brave response body we consume.
// Shapes without a "web" key decode to an empty result list rather than erroring.
type braveResponse struct {
	Web struct {
		Results []struct {
			URL         string `json:"url"`
			Title       string `json:"title"`
			Description string `json:"description"`
		} `json:"results"`
	} `json:"web"`
}

// Search issues a single web search and returns the "web results" portion of
// the response in provider order. A non-2xx status is a hard error carrying
// the status code and response body.
func (c *Client) Search(ctx context.Context, query string, count int) ([]types.SearchResult, error) {
	endpoint := fmt.Sprintf("%s?q=%s&count=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(count))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to build request", Cause: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ProviderError{Query: query, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &ProviderError{Query: query, StatusCode: resp.StatusCode, Message: string(body)}
	}

	var decoded braveResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &ProviderError{Query: query, Message: "malformed response body", Cause: err}
	}

	results := make([]types.SearchResult, 0, len(decoded.Web.Results))
	for _, r := range decoded.Web.Results {
		results = append(results, types.SearchResult{
			URL:         r.URL,
			Title:       StripMarkup(r.Title),
			Description: StripMarkup(r.Description),
		})
	}
	return results, nil
}

// StripMarkup removes the HTML highlight tags Brave embeds in titles and
// descriptions (e.g. <strong>query terms</strong>). Plain text passes through
// unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}
