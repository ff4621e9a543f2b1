package guide

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gollem"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
)

//go:embed prompt/guide_system.md
var guideSystemPrompt string

// MaxGuideLength bounds the generated implementation guide
const MaxGuideLength = 1200

// Service provides interface for implementation guide generation
type Service interface {
	// Summarize synthesizes doc snippets into actionable guidance for the
	// insight. Empty docs yield an empty guide without an LLM call.
	Summarize(ctx context.Context, insight model.Insight, docs []model.DocResult) (string, error)
}

// client implements Service interface
type client struct {
	llmClient gollem.LLMClient
}

// New creates a new guide service with the provided LLM client
func New(llmClient gollem.LLMClient) (Service, error) {
	if llmClient == nil {
		return nil, goerr.New("LLM client is required")
	}

	return &client{llmClient: llmClient}, nil
}

// Summarize generates a short implementation guide for the insight
func (c *client) Summarize(ctx context.Context, insight model.Insight, docs []model.DocResult) (string, error) {
	if len(docs) == 0 {
		return "", nil
	}

	session, err := c.llmClient.NewSession(ctx,
		gollem.WithSessionSystemPrompt(guideSystemPrompt),
	)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create LLM session")
	}

	resp, err := session.GenerateContent(ctx, gollem.Text(buildUserPrompt(insight, docs)))
	if err != nil {
		return "", goerr.Wrap(err, "failed to generate implementation guide",
			goerr.V("insight_id", insight.ID))
	}
	if len(resp.Texts) == 0 {
		return "", nil
	}

	text := strings.TrimSpace(strings.Join(resp.Texts, "\n"))

	return model.TruncateTo(text, MaxGuideLength), nil
}

// buildUserPrompt creates the user prompt with insight context and doc snippets
func buildUserPrompt(insight model.Insight, docs []model.DocResult) string {
	var sb strings.Builder

	sb.WriteString("## Insight\n")
	fmt.Fprintf(&sb, "**%s** (%s, %s)\n", insight.Title, insight.Category, insight.Severity)
	sb.WriteString(insight.Description)
	sb.WriteString("\n\n")
	fmt.Fprintf(&sb, "Suggested action: %s\n\n", insight.SuggestedAction)

	sb.WriteString("## Documentation Snippets\n")
	limit := len(docs)
	if limit > model.MaxDocsPerInsight {
		limit = model.MaxDocsPerInsight
	}
	for _, d := range docs[:limit] {
		fmt.Fprintf(&sb, "**%s** (%s)\n%s\n\n", d.Title, d.URL, d.Snippet)
	}

	sb.WriteString("## Task\n")
	sb.WriteString("Write a concise implementation guide based on the above.")

	return sb.String()
}
