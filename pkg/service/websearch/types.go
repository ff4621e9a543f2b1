package websearch

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Service provides interface to an external document search provider
type Service interface {
	// Search returns up to limit document references for the query.
	// Callers treat any error as "zero results".
	Search(ctx context.Context, query string, limit int) ([]model.DocResult, error)
}

// searchResponse mirrors the provider's JSON payload
type searchResponse struct {
	Results struct {
		Web []webResult `json:"web"`
	} `json:"results"`
}

type webResult struct {
	URL         string   `json:"url"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Snippets    []string `json:"snippets"`
}
