package usecase_test

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/m-mizutani/gt"
	"github.com/secmon-lab/hearsight/pkg/domain/model"
	"github.com/secmon-lab/hearsight/pkg/domain/types"
	"github.com/secmon-lab/hearsight/pkg/usecase"
)

func TestRenderIssueTitle(t *testing.T) {
	ins := testInsight("i-1", types.SeverityCritical)
	gt.Value(t, usecase.RenderIssueTitle(ins)).Equal("🔴 [Pain Point] Export is slow")

	ins.Severity = types.SeverityLow
	ins.Category = types.CategoryFeatureRequest
	gt.Value(t, usecase.RenderIssueTitle(ins)).Equal("🟢 [Feature Request] Export is slow")
}

func TestRenderIssueTitle_Deterministic(t *testing.T) {
	ins := testInsight("i-1", types.SeverityHigh)
	gt.Value(t, usecase.RenderIssueTitle(ins)).Equal(usecase.RenderIssueTitle(ins))
}

func TestRenderIssueBody_WithEnrichment(t *testing.T) {
	ins := testInsight("i-1", types.SeverityHigh)
	docs := []model.DocResult{
		{URL: "https://docs.example.com/streaming", Title: "Streaming exports", Snippet: "how to stream large exports"},
	}

	body := usecase.RenderIssueBody(ins, docs, "1. Use chunked responses")

	gt.Bool(t, strings.Contains(body, "## User Story")).True()
	gt.Bool(t, strings.Contains(body, "## Evidence from Interview")).True()
	gt.Bool(t, strings.Contains(body, `> "I waited five minutes for the export"`)).True()
	gt.Bool(t, strings.Contains(body, "— Speaker A")).True()
	gt.Bool(t, strings.Contains(body, "## Acceptance Criteria")).True()
	gt.Bool(t, strings.Contains(body, "[Streaming exports](https://docs.example.com/streaming)")).True()
	gt.Bool(t, strings.Contains(body, "1. Use chunked responses")).True()
	gt.Bool(t, strings.Contains(body, "| Category | `pain_point` |")).True()
	gt.Bool(t, strings.Contains(body, "| Severity | `high` |")).True()
	gt.Bool(t, strings.Contains(body, "| Insight ID | `i-1` |")).True()
}

func TestRenderIssueBody_Placeholders(t *testing.T) {
	ins := testInsight("i-1", types.SeverityMedium)

	body := usecase.RenderIssueBody(ins, nil, "")

	// Sections stay present; absence is explicit, not omitted
	gt.Bool(t, strings.Contains(body, "## 📚 Relevant Documentation")).True()
	gt.Bool(t, strings.Contains(body, "_No relevant documentation found._")).True()
	gt.Bool(t, strings.Contains(body, "## Implementation Guide")).True()
	gt.Bool(t, strings.Contains(body, "_No implementation guidance generated._")).True()
}

func TestRenderIssueBody_SnippetExcerptBounded(t *testing.T) {
	ins := testInsight("i-1", types.SeverityMedium)
	docs := []model.DocResult{
		{URL: "https://docs.example.com/a", Title: "a", Snippet: strings.Repeat("z", 400)},
	}

	body := usecase.RenderIssueBody(ins, docs, "")

	gt.Bool(t, strings.Contains(body, strings.Repeat("z", 150)+`..."`)).True()
	gt.Bool(t, strings.Contains(body, strings.Repeat("z", 151))).False()
}

func TestRenderIssueBody_MultibyteSnippetExcerpt(t *testing.T) {
	ins := testInsight("i-1", types.SeverityMedium)
	// 151 bytes; a byte cut at 150 would land inside the final rune
	docs := []model.DocResult{
		{URL: "https://docs.example.com/a", Title: "a", Snippet: "x" + strings.Repeat("あ", 50)},
	}

	body := usecase.RenderIssueBody(ins, docs, "")

	gt.Bool(t, utf8.ValidString(body)).True()
	gt.Bool(t, strings.Contains(body, "x"+strings.Repeat("あ", 49)+`..."`)).True()
	gt.Bool(t, strings.Contains(body, "x"+strings.Repeat("あ", 50))).False()
}
