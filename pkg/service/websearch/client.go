package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/utils/safe"
)

const defaultBaseURL = "https://ydc-index.io/v1/search"

// client implements Service interface
type client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option is a functional option for client configuration
type Option func(*client)

// WithBaseURL overrides the search endpoint, mainly for tests
func WithBaseURL(u string) Option {
	return func(c *client) {
		c.baseURL = u
	}
}

// WithHTTPClient overrides the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *client) {
		c.httpClient = hc
	}
}

// New creates a new document search service
func New(apiKey string, opts ...Option) (Service, error) {
	if apiKey == "" {
		return nil, goerr.New("search API key is required")
	}

	c := &client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Search queries the provider and returns up to limit document references.
// Snippets are bounded to the domain snippet length.
func (c *client) Search(ctx context.Context, query string, limit int) ([]model.DocResult, error) {
	if limit <= 0 || limit > model.MaxDocsPerInsight {
		limit = model.MaxDocsPerInsight
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build search request", goerr.V("query", query))
	}

	q := url.Values{}
	q.Set("query", query)
	q.Set("count", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "search request failed", goerr.V("query", query))
	}
	defer safe.Close(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("search returned non-OK status",
			goerr.V("query", query), goerr.V("status", resp.StatusCode))
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, goerr.Wrap(err, "failed to decode search response", goerr.V("query", query))
	}

	results := make([]model.DocResult, 0, limit)
	for _, item := range payload.Results.Web {
		if len(results) >= limit {
			break
		}
		snippet := item.Description
		if len(item.Snippets) > 0 {
			snippet = item.Snippets[0]
		}
		results = append(results, model.DocResult{
			URL:     item.URL,
			Title:   item.Title,
			Snippet: model.TruncateSnippet(snippet),
		})
	}

	return results, nil
}
