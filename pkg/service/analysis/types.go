package analysis

import (
	"context"

	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

// Service provides interface for structured insight extraction from
// transcript text
type Service interface {
	// Analyze extracts categorized, evidence-backed insights.
	// A response that does not match the expected schema is a hard error;
	// partial results are never returned.
	Analyze(ctx context.Context, transcript string) (*model.Analysis, error)
}

// llmResponse is the structured output from the LLM. It mirrors the
// response schema and is strictly decoded before conversion to the domain
// model.
type llmResponse struct {
	ProductContext        string       `json:"product_context"`
	Insights              []llmInsight `json:"insights"`
	Themes                []string     `json:"themes"`
	RecommendedPriorities []string     `json:"recommended_priorities"`
}

type llmInsight struct {
	ID              string `json:"id"`
	Category        string `json:"category"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Severity        string `json:"severity"`
	EvidenceQuote   string `json:"evidence_quote"`
	Speaker         string `json:"speaker"`
	SuggestedAction string `json:"suggested_action"`
	DocSearchQuery  string `json:"doc_search_query"`
}
