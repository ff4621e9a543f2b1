package analysis

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
)

//go:embed prompt/analysis_system.md
var analysisSystemPrompt string

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates a new analysis service with the provided LLM client
func New(llmClient gollem.LLMClient) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &client{llmClient: llmClient}, nil
}

// Analyze extracts structured insights from transcript text
func (c *client) Analyze(ctx context.Context, transcript string) (*model.Analysis, error) {
	if strings.TrimSpace(transcript) == "" {
		return nil, goerr.New("transcript is empty")
	}

	schema := buildResponseSchema()

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionContentType(gollem.ContentTypeJSON),
		gollem.WithSessionResponseSchema(schema),
		gollem.WithSessionSystemPrompt(analysisSystemPrompt),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create LLM session")
	}

	userPrompt := fmt.Sprintf("Analyze this user interview transcript and extract actionable product insights:\n\n%s", transcript)

	resp, err := session.GenerateContent(ctx, gollem.Text(userPrompt))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to generate content from LLM")
	}
	if len(resp.Texts) == 0 {
		return nil, goerr.New("LLM returned no content")
	}

	var llmResp llmResponse
	if err := json.Unmarshal([]byte(resp.Texts[0]), &llmResp); err != nil {
		return nil, goerr.Wrap(err, "failed to parse LLM response", goerr.V("response", resp.Texts[0]))
	}

	result, err := convertAnalysis(&llmResp)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// convertAnalysis converts the decoded LLM response to the domain model.
// It fails closed: any invalid category, severity or duplicate ID rejects
// the whole response.
func convertAnalysis(resp *llmResponse) (*model.Analysis, error) {
	insights := make([]model.Insight, 0, len(resp.Insights))
	for _, ins := range resp.Insights {
		insights = append(insights, model.Insight{
			ID:              types.InsightID(ins.ID),
			Category:        types.Category(ins.Category),
			Title:           ins.Title,
			Description:     ins.Description,
			Severity:        types.Severity(ins.Severity),
			EvidenceQuote:   ins.EvidenceQuote,
			Speaker:         ins.Speaker,
			SuggestedAction: ins.SuggestedAction,
			DocSearchQuery:  ins.DocSearchQuery,
		})
	}

	result := &model.Analysis{
		ProductContext:        resp.ProductContext,
		Insights:              insights,
		Themes:                resp.Themes,
		RecommendedPriorities: resp.RecommendedPriorities,
	}

	if err := result.Validate(); err != nil {
		return nil, goerr.Wrap(err, "LLM response failed validation")
	}

	return result, nil
}

// buildResponseSchema creates the JSON schema for structured output
func buildResponseSchema() *gollem.Parameter {
	categoryValues := make([]string, 0, len(types.Categories()))
	for _, c := range types.Categories() {
		categoryValues = append(categoryValues, c.String())
	}
	severityValues := make([]string, 0, len(types.Severities()))
	for _, s := range types.Severities() {
		severityValues = append(severityValues, s.String())
	}

	return &gollem.Parameter{
		Title:       "InterviewAnalysisResponse",
		Description: "Structured product insights extracted from an interview transcript",
		Type:        gollem.TypeObject,
		Properties: map[string]*gollem.Parameter{
			"product_context": {
				Type:        gollem.TypeString,
				Description: "Brief summary of what product/feature is being discussed",
			},
			"insights": {
				Type:        gollem.TypeArray,
				Description: "Actionable insights grounded in direct quotes",
				Items: &gollem.Parameter{
					Type: gollem.TypeObject,
					Properties: map[string]*gollem.Parameter{
						"id": {
							Type:        gollem.TypeString,
							Description: "Unique ID within this analysis, e.g. insight-001",
						},
						"category": {
							Type: gollem.TypeString,
							Enum: categoryValues,
						},
						"title": {
							Type:        gollem.TypeString,
							Description: "Short actionable title, max 80 chars",
						},
						"description": {
							Type: gollem.TypeString,
						},
						"severity": {
							Type: gollem.TypeString,
							Enum: severityValues,
						},
						"evidence_quote": {
							Type:        gollem.TypeString,
							Description: "Direct quote from interviewee",
						},
						"speaker": {
							Type:        gollem.TypeString,
							Description: "Speaker label from transcript",
						},
						"suggested_action": {
							Type: gollem.TypeString,
						},
						"doc_search_query": {
							Type:        gollem.TypeString,
							Description: "Specific search query for relevant technical docs/libraries",
						},
					},
					Required: []string{
						"id", "category", "title", "description", "severity",
						"evidence_quote", "speaker", "suggested_action", "doc_search_query",
					},
				},
			},
			"themes": {
				Type:  gollem.TypeArray,
				Items: &gollem.Parameter{Type: gollem.TypeString},
			},
			"recommended_priorities": {
				Type:        gollem.TypeArray,
				Description: "Ordered list of insight IDs by priority",
				Items:       &gollem.Parameter{Type: gollem.TypeString},
			},
		},
		Required: []string{"product_context", "insights", "themes", "recommended_priorities"},
	}
}
